package scheduling

import (
	"context"
	"time"

	"serenemind/models"
	"serenemind/utils"

	"go.uber.org/zap"
)

// NoSlotsAdvisory is the user-facing message attached to an empty
// availability result. An empty result is valid, not an error.
const NoSlotsAdvisory = "No slots available for the selected date"

// ResolveAvailability computes which roster slots are still bookable for the
// therapist on the given date. A slot is excluded when a scheduled
// appointment occupies it, or when its instant is not strictly after now.
// The current time is injected; the resolver never reads the system clock.
func (s *DefaultSchedulingService) ResolveAvailability(ctx context.Context, therapistID, date string, now time.Time) (models.AvailabilityResult, error) {
	day, err := time.ParseInLocation(dateLayout, date, now.Location())
	if err != nil {
		return models.AvailabilityResult{}, ErrInvalidDate
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return models.AvailabilityResult{}, ErrInvalidDate
	}

	times, err := s.Repo.GetScheduledTimes(ctx, therapistID, date)
	if err != nil {
		classified := classifyStorageError(err)
		utils.GetLogger().Error("ResolveAvailability: failed to fetch scheduled appointments",
			zap.String("therapistID", therapistID), zap.String("date", date), zap.Error(classified))
		return models.AvailabilityResult{}, classified
	}

	booked := make(map[string]struct{}, len(times))
	for _, t := range times {
		booked[t] = struct{}{}
	}

	available := make([]string, 0, len(SlotRoster))
	for _, slot := range SlotRoster {
		if _, taken := booked[slot]; taken {
			continue
		}
		instant, err := SlotInstant(date, slot, now.Location())
		if err != nil {
			// A malformed roster label is a programming error; skip it.
			utils.GetLogger().Warn("ResolveAvailability: unparseable roster slot", zap.String("slot", slot))
			continue
		}
		if !instant.After(now) {
			continue
		}
		available = append(available, slot)
	}

	result := models.AvailabilityResult{Available: available}
	if len(available) == 0 {
		result.Advisory = NoSlotsAdvisory
	}
	return result, nil
}
