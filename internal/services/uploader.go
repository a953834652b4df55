package services

import (
	"context"
	"fmt"
	"log/slog"
)

// ObjectStore persists raw bytes under an object name and returns their location.
type ObjectStore interface {
	Put(ctx context.Context, objectName string, data []byte) (string, error)
}

// Uploader stores uploaded documents. It never fails the caller: a missing
// store yields Skipped and an API error yields Failed.
type Uploader struct {
	store ObjectStore
}

// NewUploader returns an Uploader. A nil store means storage is not configured.
func NewUploader(store ObjectStore) *Uploader {
	return &Uploader{store: store}
}

// ObjectName is where a document's raw bytes are stored.
func ObjectName(documentID, filename string) string {
	return fmt.Sprintf("uploads/%s/%s", documentID, filename)
}

func (u *Uploader) Upload(ctx context.Context, content []byte, filename, documentID string) Outcome[string] {
	logCtx := slog.With("documentId", documentID, "filename", filename)
	if u.store == nil {
		logCtx.Warn("GCS credentials or bucket name not configured. Skipping upload.")
		return skipped[string]()
	}

	location, err := u.store.Put(ctx, ObjectName(documentID, filename), content)
	if err != nil {
		logCtx.Error("GCS upload failed. Check bucket name and permissions.", "error", err)
		return failed[string](err)
	}
	logCtx.Info("File uploaded to GCS.", "location", location)
	return stored(location)
}
