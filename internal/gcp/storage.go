package gcp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GCSStore writes uploaded documents to a single Cloud Storage bucket.
type GCSStore struct {
	client *storage.Client
	bucket string
}

func NewGCSStore(ctx context.Context, credentialsJSON []byte, bucket string) (*GCSStore, error) {
	if bucket == "" {
		return nil, fmt.Errorf("bucket must be provided to create a storage client")
	}
	client, err := storage.NewClient(ctx, option.WithCredentialsJSON(credentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &GCSStore{client: client, bucket: bucket}, nil
}

// Put writes data to objectName only if the object doesn't already exist and
// returns its gs:// location. An existing object is not a failure.
func (s *GCSStore) Put(ctx context.Context, objectName string, data []byte) (string, error) {
	writer := s.client.Bucket(s.bucket).Object(objectName).If(storage.Conditions{DoesNotExist: true}).NewWriter(ctx)

	if _, err := io.Copy(writer, bytes.NewReader(data)); err != nil {
		_ = writer.Close()
		return "", fmt.Errorf("failed to write to GCS: %w", err)
	}

	if err := writer.Close(); err != nil {
		if isPreconditionFailed(err) {
			slog.Info("Object already exists, skipping write.", "gcsObject", objectName)
			return Location(s.bucket, objectName), nil
		}
		return "", fmt.Errorf("failed to finalize GCS write: %w", err)
	}
	return Location(s.bucket, objectName), nil
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}

// Location formats a gs:// URI.
func Location(bucket, objectName string) string {
	return fmt.Sprintf("gs://%s/%s", bucket, objectName)
}

func isPreconditionFailed(err error) bool {
	var gerr *googleapi.Error
	return errors.As(err, &gerr) && gerr.Code == http.StatusPreconditionFailed
}
