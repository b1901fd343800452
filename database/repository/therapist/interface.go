package therapistRepo

import (
	"context"

	"serenemind/models"
)

// TherapistRepository defines methods for therapist data access.
type TherapistRepository interface {
	Create(ctx context.Context, therapist *models.Therapist) error
	GetByID(ctx context.Context, id string) (*models.Therapist, error)
	ListActive(ctx context.Context) ([]models.Therapist, error)
}
