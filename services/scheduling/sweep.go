package scheduling

import (
	"context"
	"time"

	"serenemind/utils"

	"go.uber.org/zap"
)

// CompleteElapsed marks every scheduled appointment whose slot has passed as
// completed and returns how many were transitioned. Appointments later today
// are left scheduled.
func (s *DefaultSchedulingService) CompleteElapsed(ctx context.Context, now time.Time) (int, error) {
	appts, err := s.Repo.ListScheduledThrough(ctx, now.Format(dateLayout))
	if err != nil {
		return 0, classifyStorageError(err)
	}

	completed := 0
	for _, appt := range appts {
		instant, err := SlotInstant(appt.Date, appt.Time, now.Location())
		if err != nil {
			utils.GetLogger().Warn("CompleteElapsed: unparseable stored slot",
				zap.String("appointmentID", appt.ID), zap.String("time", appt.Time))
			continue
		}
		if instant.After(now) {
			continue
		}
		if err := s.CompleteAppointment(ctx, appt.ID); err != nil {
			// Keep sweeping; the next run picks this one up again.
			utils.GetLogger().Error("CompleteElapsed: failed to complete appointment",
				zap.String("appointmentID", appt.ID), zap.Error(err))
			continue
		}
		completed++
	}
	return completed, nil
}
