package selfcare

import "fmt"

// SelfCareError carries a machine-readable code alongside the message.
type SelfCareError struct {
	Code    string
	Message string
}

func (e *SelfCareError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	// ErrEmptyQuery means no query field carried a non-blank value.
	ErrEmptyQuery = &SelfCareError{Code: "emptyQuery", Message: "at least one question must be answered"}

	// ErrEmptyCatalog means the reference catalog has no rows.
	ErrEmptyCatalog = &SelfCareError{Code: "emptyCatalog", Message: "the recommendation catalog is empty"}
)
