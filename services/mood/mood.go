package mood

import (
	"context"
	"fmt"
	"strings"
	"time"

	"serenemind/models"
	"serenemind/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// knownMoods is the fixed vocabulary the tracker accepts.
var knownMoods = map[string]struct{}{
	"happy":   {},
	"calm":    {},
	"okay":    {},
	"sad":     {},
	"anxious": {},
	"angry":   {},
	"tired":   {},
}

// LogMood records the user's mood for a day, replacing any earlier entry for
// the same date.
func (s *DefaultMoodService) LogMood(ctx context.Context, userID string, input models.MoodEntryInput) (*models.MoodEntry, error) {
	if _, err := time.Parse(dateLayout, input.Date); err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", input.Date)
	}
	moodLabel := strings.ToLower(strings.TrimSpace(input.Mood))
	if _, ok := knownMoods[moodLabel]; !ok {
		return nil, fmt.Errorf("unknown mood %q", input.Mood)
	}

	entry := &models.MoodEntry{
		ID:     uuid.New().String(),
		UserID: userID,
		Date:   input.Date,
		Mood:   moodLabel,
		Note:   input.Note,
	}
	if err := s.Repo.Upsert(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// ListRange returns the user's entries between from and to, ascending.
func (s *DefaultMoodService) ListRange(ctx context.Context, userID, from, to string) ([]models.MoodEntry, error) {
	if _, err := time.Parse(dateLayout, from); err != nil {
		return nil, fmt.Errorf("invalid from date %q", from)
	}
	if _, err := time.Parse(dateLayout, to); err != nil {
		return nil, fmt.Errorf("invalid to date %q", to)
	}
	return s.Repo.ListRange(ctx, userID, from, to)
}

// WeeklySummary aggregates the seven days ending at the given date and
// attaches a generated insight when the generator is configured.
func (s *DefaultMoodService) WeeklySummary(ctx context.Context, userID, endDate string) (*models.MoodSummary, error) {
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", endDate)
	}
	start := end.AddDate(0, 0, -6)

	entries, err := s.Repo.ListRange(ctx, userID, start.Format(dateLayout), endDate)
	if err != nil {
		return nil, err
	}

	summary := &models.MoodSummary{
		From:   start.Format(dateLayout),
		To:     endDate,
		Total:  len(entries),
		Counts: make(map[string]int),
	}
	for _, e := range entries {
		summary.Counts[e.Mood]++
	}

	if s.Insights != nil && summary.Total > 0 {
		insight, err := s.Insights.GenerateInsight(ctx, *summary)
		if err != nil {
			// The summary is still useful without the generated text.
			utils.GetLogger().Warn("WeeklySummary: insight generation failed", zap.Error(err))
		} else {
			summary.Insight = insight
		}
	}

	return summary, nil
}
