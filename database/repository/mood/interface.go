package moodRepo

import (
	"context"

	"serenemind/models"
)

// MoodRepository defines methods for mood entry data access.
type MoodRepository interface {
	// Upsert writes the entry for (user, date), replacing any earlier entry
	// for the same day.
	Upsert(ctx context.Context, entry *models.MoodEntry) error
	// ListRange returns a user's entries with from <= date <= to, ascending.
	ListRange(ctx context.Context, userID, from, to string) ([]models.MoodEntry, error)
}
