package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lllllllleong/legaldocassistant/internal/models"
)

func TestOutcome(t *testing.T) {
	v, ok := stored("gs://b/o").Get()
	assert.True(t, ok)
	assert.Equal(t, "gs://b/o", v)

	_, ok = skipped[string]().Get()
	assert.False(t, ok)

	f := failed[string](errBoom)
	_, ok = f.Get()
	assert.False(t, ok)
	assert.ErrorIs(t, f.Err, errBoom)

	assert.Equal(t, "stored", Stored.String())
	assert.Equal(t, "skipped", Skipped.String())
	assert.Equal(t, "failed", Failed.String())
}

func TestUploader(t *testing.T) {
	ctx := context.Background()

	out := NewUploader(nil).Upload(ctx, []byte("x"), "a.txt", "id")
	assert.Equal(t, Skipped, out.State)

	out = NewUploader(&fakeStore{err: errBoom}).Upload(ctx, []byte("x"), "a.txt", "id")
	assert.Equal(t, Failed, out.State)
	assert.ErrorIs(t, out.Err, errBoom)

	store := &fakeStore{}
	out = NewUploader(store).Upload(ctx, []byte("x"), "a.txt", "id")
	loc, ok := out.Get()
	require.True(t, ok)
	assert.Equal(t, "gs://test-bucket/uploads/id/a.txt", loc)
}

func TestMetadataLogger(t *testing.T) {
	ctx := context.Background()
	rec := models.MetadataRecord{DocumentID: "id"}

	assert.Equal(t, Skipped, NewMetadataLogger().Log(ctx, rec).State)
	assert.True(t, NewMetadataLogger(&fakeSink{name: "bigquery"}).Log(ctx, rec).Ok())

	good := &fakeSink{name: "firestore"}
	out := NewMetadataLogger(&fakeSink{name: "bigquery", err: errBoom}, good).Log(ctx, rec)
	assert.False(t, out.Ok())
	assert.ErrorIs(t, out.Err, errBoom)
	assert.Len(t, good.records, 1, "a failing sink does not stop later sinks")
}
