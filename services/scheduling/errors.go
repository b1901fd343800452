package scheduling

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// SchedulingError carries a machine-readable code alongside the message.
type SchedulingError struct {
	Code    string
	Message string
}

func (e *SchedulingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	// ErrInvalidDate means the date did not parse or lies in the past.
	ErrInvalidDate = &SchedulingError{Code: "invalidDate", Message: "date must be a valid calendar date on or after today"}

	// ErrSlotTaken means a scheduled appointment already occupies the slot;
	// the caller must force reselection.
	ErrSlotTaken = &SchedulingError{Code: "slotTaken", Message: "the selected time slot is no longer available"}

	// ErrUnknownSlot means the requested time label is not part of the roster.
	ErrUnknownSlot = &SchedulingError{Code: "unknownSlot", Message: "the selected time is not a valid slot"}

	// ErrStorageUnavailable is a transient storage failure; retry later.
	ErrStorageUnavailable = &SchedulingError{Code: "storageUnavailable", Message: "booking storage is temporarily unavailable"}

	// ErrStoragePermissionDenied is fatal for the current session.
	ErrStoragePermissionDenied = &SchedulingError{Code: "storagePermissionDenied", Message: "not permitted to read booking storage"}
)

// mongo server error codes treated as permission failures.
const (
	codeUnauthorized        = 13
	codeAuthenticationError = 18
)

// classifyStorageError reclassifies a raw storage error into the permission /
// transient / unknown buckets for user messaging. Unknown errors pass through
// unchanged.
func classifyStorageError(err error) error {
	if err == nil {
		return nil
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		if cmdErr.Code == codeUnauthorized || cmdErr.Code == codeAuthenticationError {
			return fmt.Errorf("%w: %v", ErrStoragePermissionDenied, err)
		}
	}

	if mongo.IsTimeout(err) || mongo.IsNetworkError(err) ||
		errors.Is(err, context.DeadlineExceeded) || errors.Is(err, mongo.ErrClientDisconnected) {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	return err
}
