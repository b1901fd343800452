package assessment

import (
	"context"
	"fmt"
	"strings"

	"serenemind/models"

	"github.com/google/uuid"
)

// severityBand maps an inclusive score range to a label.
type severityBand struct {
	Min   int
	Max   int
	Label string
}

// instrumentBands holds the banding tables for supported questionnaires.
// Answer values are 0-3 per question.
var instrumentBands = map[string][]severityBand{
	"phq-a": {
		{0, 4, "minimal"},
		{5, 9, "mild"},
		{10, 14, "moderate"},
		{15, 19, "moderately severe"},
		{20, 27, "severe"},
	},
	"gad-7": {
		{0, 4, "minimal"},
		{5, 9, "mild"},
		{10, 14, "moderate"},
		{15, 21, "severe"},
	},
}

// Submit scores the questionnaire, assigns a severity band and stores it.
func (s *DefaultAssessmentService) Submit(ctx context.Context, userID string, input models.AssessmentInput) (*models.Assessment, error) {
	instrument := strings.ToLower(strings.TrimSpace(input.Instrument))
	bands, ok := instrumentBands[instrument]
	if !ok {
		return nil, fmt.Errorf("unknown instrument %q", input.Instrument)
	}
	if len(input.Answers) == 0 {
		return nil, fmt.Errorf("answers must not be empty")
	}

	score := 0
	for question, value := range input.Answers {
		if value < 0 || value > 3 {
			return nil, fmt.Errorf("answer for %q out of range: %d", question, value)
		}
		score += value
	}

	band, err := bandFor(bands, score)
	if err != nil {
		return nil, err
	}

	a := &models.Assessment{
		ID:         uuid.New().String(),
		UserID:     userID,
		Instrument: instrument,
		Answers:    input.Answers,
		Score:      score,
		Band:       band,
	}
	if err := s.Repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// ListByUser returns the user's assessments, newest first.
func (s *DefaultAssessmentService) ListByUser(ctx context.Context, userID string) ([]models.Assessment, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// bandFor finds the band containing the score.
func bandFor(bands []severityBand, score int) (string, error) {
	for _, b := range bands {
		if score >= b.Min && score <= b.Max {
			return b.Label, nil
		}
	}
	return "", fmt.Errorf("score %d exceeds the instrument's range", score)
}
