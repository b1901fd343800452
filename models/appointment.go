package models

import "time"

// Appointment status values. Only "scheduled" appointments occupy a slot.
const (
	AppointmentScheduled = "scheduled"
	AppointmentCancelled = "cancelled"
	AppointmentCompleted = "completed"
)

// Appointment represents a confirmed therapy session booking.
type Appointment struct {
	ID          string    `bson:"id" json:"id"`                     // Unique appointment identifier (UUID)
	TherapistID string    `bson:"therapist_id" json:"therapistId"`  // Therapist who was booked
	UserID      string    `bson:"user_id" json:"userId"`            // User who made the booking
	Date        string    `bson:"date" json:"date"`                 // Booking date in "YYYY-MM-DD" format
	Time        string    `bson:"time" json:"time"`                 // Slot label, e.g. "9:00 AM"
	Status      string    `bson:"status" json:"status"`             // "scheduled", "cancelled" or "completed"
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// AppointmentInput is the payload accepted by the booking endpoint.
type AppointmentInput struct {
	TherapistID string `json:"therapistId" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Notes       string `json:"notes"`
}

// AvailabilityResult is the outcome of an availability check. Advisory is set
// when the computed list is empty; an empty list is a valid result, not an
// error.
type AvailabilityResult struct {
	Available []string `json:"available"`
	Advisory  string   `json:"advisory,omitempty"`
}
