package scheduling

import (
	"context"
	"time"

	appointmentRepo "serenemind/database/repository/appointment"
	therapistRepo "serenemind/database/repository/therapist"
	"serenemind/models"
)

// SchedulingService defines availability and appointment operations.
type SchedulingService interface {
	// ResolveAvailability computes which roster slots are still bookable for
	// the therapist on the given date, evaluated against the injected now.
	ResolveAvailability(ctx context.Context, therapistID, date string, now time.Time) (models.AvailabilityResult, error)

	// BookAppointment books a slot for the user, scheduling a reminder on
	// success. Returns ErrSlotTaken when the slot was booked concurrently.
	BookAppointment(ctx context.Context, userID string, input models.AppointmentInput) (*models.Appointment, error)

	// CancelAppointment transitions the user's scheduled appointment to
	// cancelled.
	CancelAppointment(ctx context.Context, userID, appointmentID string) error

	// CompleteAppointment marks a scheduled appointment as completed.
	CompleteAppointment(ctx context.Context, appointmentID string) error

	// CompleteElapsed marks every scheduled appointment whose slot has
	// passed as completed, returning the number transitioned.
	CompleteElapsed(ctx context.Context, now time.Time) (int, error)

	// ListUserAppointments returns the user's appointments, newest first.
	ListUserAppointments(ctx context.Context, userID string) ([]models.Appointment, error)
}

// ReminderScheduler enqueues an appointment reminder to fire at the given
// instant. Implemented by the asynq task queue; nil-able for tests.
type ReminderScheduler interface {
	ScheduleReminder(payload models.ReminderPayload, fireAt time.Time) error
}

// DefaultSchedulingService is the production implementation.
type DefaultSchedulingService struct {
	Repo          appointmentRepo.AppointmentRepository
	TherapistRepo therapistRepo.TherapistRepository
	Reminders     ReminderScheduler

	// Now is the clock used for booking-time availability checks. Defaults
	// to time.Now when unset.
	Now func() time.Time
}

func (s *DefaultSchedulingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
