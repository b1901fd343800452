package storage

import (
	"context"
)

// StorageService defines the interface for media storage operations.
type StorageService interface {
	// UploadFile uploads a local file into the given folder and returns the
	// permanent identifier.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	// DeleteFile removes a stored file by its public ID.
	DeleteFile(ctx context.Context, publicID string) error
	// GetDownloadURL returns a public delivery URL for a stored file.
	GetDownloadURL(ctx context.Context, publicID string) (string, error)
}
