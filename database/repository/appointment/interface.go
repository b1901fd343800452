package appointmentRepo

import (
	"context"

	"serenemind/models"
)

// AppointmentRepository defines the interface for appointment data access.
type AppointmentRepository interface {
	// Create inserts a new appointment. Returns ErrSlotTaken when another
	// scheduled appointment already occupies the same (therapist, date, time).
	Create(ctx context.Context, appt *models.Appointment) error
	// GetByID retrieves an appointment by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// GetScheduledTimes returns the time labels of all scheduled appointments
	// for the given therapist and date.
	GetScheduledTimes(ctx context.Context, therapistID, date string) ([]string, error)
	// ListByUser returns a user's appointments, newest date first.
	ListByUser(ctx context.Context, userID string) ([]models.Appointment, error)
	// ListScheduledThrough returns every scheduled appointment dated on or
	// before the given date. Used by the completion sweep.
	ListScheduledThrough(ctx context.Context, date string) ([]models.Appointment, error)
	// UpdateStatus transitions an appointment from one status to another.
	UpdateStatus(ctx context.Context, id, fromStatus, toStatus string) error
}
