package models

// ReminderPayload is the body of a queued appointment reminder task.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	UserID        string `json:"userId"`
	TherapistName string `json:"therapistName"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}
