package gcp

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"github.com/Lllllllleong/legaldocassistant/internal/models"
)

// NewFirestoreClient creates and returns a new Firestore client for the given project ID.
func NewFirestoreClient(ctx context.Context, credentialsJSON []byte, projectID string) (*firestore.Client, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID must be provided to create a firestore client")
	}

	client, err := firestore.NewClient(ctx, projectID, option.WithCredentialsJSON(credentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return client, nil
}

// FirestoreRegistry keeps one document per analyzed upload, keyed by document ID.
type FirestoreRegistry struct {
	client     *firestore.Client
	collection string
}

func NewFirestoreRegistry(client *firestore.Client, collection string) *FirestoreRegistry {
	return &FirestoreRegistry{client: client, collection: collection}
}

func (r *FirestoreRegistry) Name() string {
	return "firestore"
}

// Record creates the registry document. Records are immutable, so an existing
// document with the same ID is an error.
func (r *FirestoreRegistry) Record(ctx context.Context, rec models.MetadataRecord) error {
	if _, err := r.client.Collection(r.collection).Doc(rec.DocumentID).Create(ctx, rec); err != nil {
		return fmt.Errorf("failed to create registry document %s: %w", rec.DocumentID, err)
	}
	return nil
}

func (r *FirestoreRegistry) Close() error {
	return r.client.Close()
}
