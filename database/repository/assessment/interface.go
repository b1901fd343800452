package assessmentRepo

import (
	"context"

	"serenemind/models"
)

// AssessmentRepository defines methods for assessment data access.
type AssessmentRepository interface {
	Create(ctx context.Context, assessment *models.Assessment) error
	ListByUser(ctx context.Context, userID string) ([]models.Assessment, error)
}
