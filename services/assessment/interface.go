package assessment

import (
	"context"

	assessmentRepo "serenemind/database/repository/assessment"
	"serenemind/models"
)

// AssessmentService scores and stores self-assessment questionnaires.
type AssessmentService interface {
	Submit(ctx context.Context, userID string, input models.AssessmentInput) (*models.Assessment, error)
	ListByUser(ctx context.Context, userID string) ([]models.Assessment, error)
}

// DefaultAssessmentService is the production implementation.
type DefaultAssessmentService struct {
	Repo assessmentRepo.AssessmentRepository
}
