package therapist

import (
	"context"

	therapistRepo "serenemind/database/repository/therapist"
	"serenemind/models"
)

// TherapistService exposes the therapist directory.
type TherapistService interface {
	ListActive(ctx context.Context) ([]models.Therapist, error)
	GetByID(ctx context.Context, id string) (*models.Therapist, error)
	Create(ctx context.Context, therapist *models.Therapist) (*models.Therapist, error)
}

// DefaultTherapistService is the production implementation.
type DefaultTherapistService struct {
	Repo therapistRepo.TherapistRepository
}
