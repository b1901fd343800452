package journalRepo

import (
	"context"

	"serenemind/models"
)

// JournalRepository defines methods for journal entry data access.
type JournalRepository interface {
	Create(ctx context.Context, entry *models.JournalEntry) error
	GetByID(ctx context.Context, id string) (*models.JournalEntry, error)
	ListByUser(ctx context.Context, userID string, limit int64) ([]models.JournalEntry, error)
	Delete(ctx context.Context, id, userID string) error
}
