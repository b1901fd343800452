package mood

import (
	"context"

	moodRepo "serenemind/database/repository/mood"
	"serenemind/models"
)

// MoodService tracks daily mood entries and summarizes them.
type MoodService interface {
	// LogMood records the user's mood for a day, replacing any earlier entry
	// for the same date.
	LogMood(ctx context.Context, userID string, input models.MoodEntryInput) (*models.MoodEntry, error)
	// ListRange returns the user's entries between from and to, ascending.
	ListRange(ctx context.Context, userID, from, to string) ([]models.MoodEntry, error)
	// WeeklySummary aggregates the seven days ending at the given date.
	WeeklySummary(ctx context.Context, userID, endDate string) (*models.MoodSummary, error)
}

// InsightGenerator produces a short supportive text for a mood summary.
// Nil-able; summaries then carry no insight.
type InsightGenerator interface {
	GenerateInsight(ctx context.Context, summary models.MoodSummary) (string, error)
}

// DefaultMoodService is the production implementation.
type DefaultMoodService struct {
	Repo     moodRepo.MoodRepository
	Insights InsightGenerator
}
