package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Lllllllleong/legaldocassistant/internal/models"
)

// MetadataSink records one metadata row. Implementations: BigQuery, Firestore.
type MetadataSink interface {
	Name() string
	Record(ctx context.Context, rec models.MetadataRecord) error
}

// MetadataLogger writes a record to every configured sink, one after another.
type MetadataLogger struct {
	sinks []MetadataSink
}

// NewMetadataLogger returns a logger over sinks. With no sinks every Log is Skipped.
func NewMetadataLogger(sinks ...MetadataSink) *MetadataLogger {
	return &MetadataLogger{sinks: sinks}
}

// Log never returns an error; Ok reports whether every sink accepted the record.
func (l *MetadataLogger) Log(ctx context.Context, rec models.MetadataRecord) Outcome[struct{}] {
	logCtx := slog.With("documentId", rec.DocumentID)
	if len(l.sinks) == 0 {
		logCtx.Warn("Metadata sinks not configured. Skipping logging.")
		return skipped[struct{}]()
	}

	var errs []error
	for _, sink := range l.sinks {
		if err := sink.Record(ctx, rec); err != nil {
			logCtx.Error("Metadata logging failed. Check table and permissions.", "sink", sink.Name(), "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", sink.Name(), err))
			continue
		}
		logCtx.Info("Metadata logged.", "sink", sink.Name())
	}
	if len(errs) > 0 {
		return failed[struct{}](errors.Join(errs...))
	}
	return stored(struct{}{})
}
