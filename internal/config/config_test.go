package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "GEMINI_API_KEY", "GEMINI_MODEL", "GCP_PROJECT_ID",
		"GCS_BUCKET_NAME", "BIGQUERY_DATASET", "BIGQUERY_TABLE", "FIRESTORE_COLLECTION",
		"GCP_CREDENTIALS_JSON", "MAX_UPLOAD_MB",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("GEMINI_MODEL", DefaultModel)
	t.Setenv("BIGQUERY_TABLE", DefaultMetadataTable)

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DefaultModel, cfg.GeminiModel)
	assert.False(t, cfg.GeminiConfigured())
	assert.False(t, cfg.GCPConfigured())
	assert.False(t, cfg.HasCredentials())
	assert.Equal(t, int64(32)<<20, cfg.MaxUploadBytes)
}

func TestLoadCredentials(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("GCP_PROJECT_ID", "proj")
	t.Setenv("BIGQUERY_DATASET", "legal")
	t.Setenv("BIGQUERY_TABLE", "document_metadata")
	t.Setenv("GCP_CREDENTIALS_JSON", `{"type":"service_account","project_id":"proj"}`)

	cfg := Load()

	assert.True(t, cfg.GeminiConfigured())
	assert.True(t, cfg.GCPConfigured())
	require.True(t, cfg.HasCredentials())
	assert.Equal(t, "legal", cfg.BigQueryDataset)
	assert.Equal(t, DefaultMetadataTable, cfg.BigQueryTable)
}

func TestLoadMalformedCredentials(t *testing.T) {
	clearEnv(t)
	t.Setenv("GCP_CREDENTIALS_JSON", `{"type":`)

	cfg := Load()

	// Present but unusable: health still reports it, clients are not built.
	assert.True(t, cfg.GCPConfigured())
	assert.False(t, cfg.HasCredentials())
}

func TestGetEnvIntFallback(t *testing.T) {
	t.Setenv("MAX_UPLOAD_MB", "lots")
	assert.Equal(t, 7, getEnvInt("MAX_UPLOAD_MB", 7))
	t.Setenv("MAX_UPLOAD_MB", "4")
	assert.Equal(t, 4, getEnvInt("MAX_UPLOAD_MB", 7))
}
