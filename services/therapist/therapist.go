package therapist

import (
	"context"
	"fmt"
	"strings"

	"serenemind/models"

	"github.com/google/uuid"
)

// ListActive returns all bookable therapists.
func (s *DefaultTherapistService) ListActive(ctx context.Context) ([]models.Therapist, error) {
	return s.Repo.ListActive(ctx)
}

// GetByID returns one therapist profile.
func (s *DefaultTherapistService) GetByID(ctx context.Context, id string) (*models.Therapist, error) {
	return s.Repo.GetByID(ctx, id)
}

// Create adds a therapist to the directory.
func (s *DefaultTherapistService) Create(ctx context.Context, t *models.Therapist) (*models.Therapist, error) {
	if strings.TrimSpace(t.Name) == "" {
		return nil, fmt.Errorf("therapist name must not be blank")
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	t.Active = true
	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
