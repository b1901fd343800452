package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	appointmentRepo "serenemind/database/repository/appointment"
	"serenemind/models"
	"serenemind/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// reminderLead is how long before the session the reminder fires.
const reminderLead = time.Hour

// BookAppointment books a slot for the user. The availability check and the
// conditional insert are not atomic together; the storage-level unique index
// is what actually arbitrates a race, surfacing ErrSlotTaken to the loser.
func (s *DefaultSchedulingService) BookAppointment(ctx context.Context, userID string, input models.AppointmentInput) (*models.Appointment, error) {
	logger := utils.GetLogger()

	therapist, err := s.TherapistRepo.GetByID(ctx, input.TherapistID)
	if err != nil {
		return nil, fmt.Errorf("therapist not found: %w", err)
	}

	if !rosterContains(input.Time) {
		return nil, ErrUnknownSlot
	}

	now := s.now()
	result, err := s.ResolveAvailability(ctx, input.TherapistID, input.Date, now)
	if err != nil {
		return nil, err
	}
	if !containsSlot(result.Available, input.Time) {
		return nil, ErrSlotTaken
	}

	appt := &models.Appointment{
		ID:          uuid.New().String(),
		TherapistID: input.TherapistID,
		UserID:      userID,
		Date:        input.Date,
		Time:        input.Time,
		Status:      models.AppointmentScheduled,
		Notes:       input.Notes,
	}

	if err := s.Repo.Create(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			return nil, ErrSlotTaken
		}
		return nil, classifyStorageError(err)
	}

	if s.Reminders != nil {
		instant, err := SlotInstant(appt.Date, appt.Time, now.Location())
		if err == nil && instant.Add(-reminderLead).After(now) {
			payload := models.ReminderPayload{
				AppointmentID: appt.ID,
				UserID:        userID,
				TherapistName: therapist.Name,
				Date:          appt.Date,
				Time:          appt.Time,
			}
			if err := s.Reminders.ScheduleReminder(payload, instant.Add(-reminderLead)); err != nil {
				// Reminder delivery is best effort; the booking stands.
				logger.Error("BookAppointment: failed to schedule reminder",
					zap.String("appointmentID", appt.ID), zap.Error(err))
			}
		}
	}

	return appt, nil
}

// CancelAppointment transitions the user's scheduled appointment to cancelled.
func (s *DefaultSchedulingService) CancelAppointment(ctx context.Context, userID, appointmentID string) error {
	appt, err := s.Repo.GetByID(ctx, appointmentID)
	if err != nil {
		return classifyStorageError(err)
	}
	if appt.UserID != userID {
		return fmt.Errorf("appointment %s does not belong to user %s", appointmentID, userID)
	}
	if err := s.Repo.UpdateStatus(ctx, appointmentID, models.AppointmentScheduled, models.AppointmentCancelled); err != nil {
		return classifyStorageError(err)
	}
	return nil
}

// CompleteAppointment marks a scheduled appointment as completed.
func (s *DefaultSchedulingService) CompleteAppointment(ctx context.Context, appointmentID string) error {
	if err := s.Repo.UpdateStatus(ctx, appointmentID, models.AppointmentScheduled, models.AppointmentCompleted); err != nil {
		return classifyStorageError(err)
	}
	return nil
}

// ListUserAppointments returns the user's appointments, newest first.
func (s *DefaultSchedulingService) ListUserAppointments(ctx context.Context, userID string) ([]models.Appointment, error) {
	appts, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, classifyStorageError(err)
	}
	return appts, nil
}

func containsSlot(slots []string, label string) bool {
	for _, s := range slots {
		if s == label {
			return true
		}
	}
	return false
}
