package journal

import (
	"context"

	journalRepo "serenemind/database/repository/journal"
	"serenemind/models"
	"serenemind/services/storage"
)

// JournalService manages a user's private journal.
type JournalService interface {
	CreateEntry(ctx context.Context, userID string, input models.JournalEntryInput) (*models.JournalEntry, error)
	ListEntries(ctx context.Context, userID string, limit int64) ([]models.JournalEntry, error)
	GetEntry(ctx context.Context, userID, entryID string) (*models.JournalEntry, error)
	DeleteEntry(ctx context.Context, userID, entryID string) error

	// AttachImage uploads a local image file and returns its URL for use in
	// a subsequent CreateEntry call.
	AttachImage(ctx context.Context, localPath string) (string, error)
}

// DefaultJournalService is the production implementation. Storage may be
// nil; attachments are then rejected.
type DefaultJournalService struct {
	Repo    journalRepo.JournalRepository
	Storage storage.StorageService
}
