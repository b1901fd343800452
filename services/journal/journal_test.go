package journal

import (
	"context"
	"errors"
	"testing"
)

type fakeStorage struct {
	uploaded  []string
	folders   []string
	uploadErr error
}

func (f *fakeStorage) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploaded = append(f.uploaded, localFilePath)
	f.folders = append(f.folders, destFolder)
	return "public-id-1", nil
}

func (f *fakeStorage) DeleteFile(ctx context.Context, publicID string) error {
	return nil
}

func (f *fakeStorage) GetDownloadURL(ctx context.Context, publicID string) (string, error) {
	return "https://cdn.example.com/" + publicID, nil
}

func TestAttachImage(t *testing.T) {
	st := &fakeStorage{}
	svc := &DefaultJournalService{Storage: st}

	url, err := svc.AttachImage(context.Background(), "/tmp/drawing.png")
	if err != nil {
		t.Fatalf("AttachImage: %v", err)
	}
	if url != "https://cdn.example.com/public-id-1" {
		t.Errorf("url = %q", url)
	}
	if len(st.folders) != 1 || st.folders[0] != attachmentFolder {
		t.Errorf("uploaded into %v, want %q", st.folders, attachmentFolder)
	}
}

func TestAttachImageDisabled(t *testing.T) {
	svc := &DefaultJournalService{}

	_, err := svc.AttachImage(context.Background(), "/tmp/drawing.png")
	if !errors.Is(err, ErrAttachmentsDisabled) {
		t.Errorf("error = %v, want ErrAttachmentsDisabled", err)
	}
}

func TestAttachImageUploadFailure(t *testing.T) {
	st := &fakeStorage{uploadErr: errors.New("network down")}
	svc := &DefaultJournalService{Storage: st}

	if _, err := svc.AttachImage(context.Background(), "/tmp/drawing.png"); err == nil {
		t.Error("AttachImage succeeded, want error")
	}
}
