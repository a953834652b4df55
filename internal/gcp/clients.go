package gcp

import (
	"context"
	"io"
	"log/slog"

	"github.com/Lllllllleong/legaldocassistant/internal/config"
)

// Clients holds every external client the service may use. Any member is nil
// when its configuration is absent or its construction failed; callers treat
// nil as "not configured".
type Clients struct {
	Gemini    *GeminiClient
	OCR       *VisionOCR
	Store     *GCSStore
	Warehouse *BigQuerySink
	Registry  *FirestoreRegistry

	closers []io.Closer
}

// NewClients builds the clients the configuration allows. Only the model
// client is a hard dependency, and even its absence is reported per request
// rather than at startup.
func NewClients(ctx context.Context, cfg config.Config) *Clients {
	c := &Clients{}

	if cfg.GeminiConfigured() {
		gemini, err := NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			slog.Error("Failed to create Gemini client", "error", err)
		} else {
			c.Gemini = gemini
			c.closers = append(c.closers, gemini)
		}
	} else {
		slog.Warn("GEMINI_API_KEY is not set; analysis and chat will be unavailable.")
	}

	if !cfg.HasCredentials() {
		slog.Warn("GCP credentials not configured; OCR, storage and metadata logging are disabled.")
		return c
	}

	if ocr, err := NewVisionOCR(ctx, cfg.CredentialsJSON); err != nil {
		slog.Error("Failed to create Vision client", "error", err)
	} else {
		c.OCR = ocr
		c.closers = append(c.closers, ocr)
	}

	if cfg.BucketName != "" {
		if store, err := NewGCSStore(ctx, cfg.CredentialsJSON, cfg.BucketName); err != nil {
			slog.Error("Failed to create storage client", "error", err)
		} else {
			c.Store = store
			c.closers = append(c.closers, store)
		}
	}

	if cfg.BigQueryDataset != "" {
		if sink, err := NewBigQuerySink(ctx, cfg.CredentialsJSON, cfg.ProjectID, cfg.BigQueryDataset, cfg.BigQueryTable); err != nil {
			slog.Error("Failed to create BigQuery client", "error", err)
		} else {
			c.Warehouse = sink
			c.closers = append(c.closers, sink)
		}
	}

	if cfg.FirestoreCollection != "" {
		if client, err := NewFirestoreClient(ctx, cfg.CredentialsJSON, cfg.ProjectID); err != nil {
			slog.Error("Failed to create Firestore client", "error", err)
		} else {
			c.Registry = NewFirestoreRegistry(client, cfg.FirestoreCollection)
			c.closers = append(c.closers, c.Registry)
		}
	}

	return c
}

// Close releases every client that was created.
func (c *Clients) Close() {
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil {
			slog.Warn("Failed to close client", "error", err)
		}
	}
}
