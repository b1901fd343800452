package journal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"serenemind/models"

	"github.com/google/uuid"
)

// attachmentFolder is the Cloudinary folder for journal images.
const attachmentFolder = "journal/attachments"

// ErrAttachmentsDisabled means no storage backend is configured.
var ErrAttachmentsDisabled = errors.New("attachments are not enabled")

// CreateEntry stores a new journal entry for the user.
func (s *DefaultJournalService) CreateEntry(ctx context.Context, userID string, input models.JournalEntryInput) (*models.JournalEntry, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("entry title must not be blank")
	}

	entry := &models.JournalEntry{
		ID:            uuid.New().String(),
		UserID:        userID,
		Title:         strings.TrimSpace(input.Title),
		Body:          input.Body,
		AttachmentURL: input.AttachmentURL,
	}
	if err := s.Repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// ListEntries returns the user's entries, newest first.
func (s *DefaultJournalService) ListEntries(ctx context.Context, userID string, limit int64) ([]models.JournalEntry, error) {
	return s.Repo.ListByUser(ctx, userID, limit)
}

// GetEntry returns one entry, verifying ownership.
func (s *DefaultJournalService) GetEntry(ctx context.Context, userID, entryID string) (*models.JournalEntry, error) {
	entry, err := s.Repo.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.UserID != userID {
		return nil, fmt.Errorf("journal entry %s not found", entryID)
	}
	return entry, nil
}

// DeleteEntry removes one of the user's entries.
func (s *DefaultJournalService) DeleteEntry(ctx context.Context, userID, entryID string) error {
	return s.Repo.Delete(ctx, entryID, userID)
}

// AttachImage uploads a local image file and returns its URL.
func (s *DefaultJournalService) AttachImage(ctx context.Context, localPath string) (string, error) {
	if s.Storage == nil {
		return "", ErrAttachmentsDisabled
	}
	publicID, err := s.Storage.UploadFile(ctx, localPath, attachmentFolder)
	if err != nil {
		return "", fmt.Errorf("failed to upload attachment: %w", err)
	}
	return s.Storage.GetDownloadURL(ctx, publicID)
}
