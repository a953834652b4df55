package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"strconv"
)

const (
	DefaultModel         = "gemini-1.5-flash-latest"
	DefaultMetadataTable = "document_metadata"
	DefaultLanguage      = "English"
)

// Config is the process-wide configuration. It is loaded once at startup and
// handed to every component at construction time; nothing mutates it afterwards.
type Config struct {
	Port     string
	LogLevel string

	GeminiAPIKey string
	GeminiModel  string

	ProjectID           string
	BucketName          string
	BigQueryDataset     string
	BigQueryTable       string
	FirestoreCollection string

	// CredentialsJSON holds the parsed-and-validated service account blob.
	// It is nil when GCP_CREDENTIALS_JSON is unset or malformed.
	CredentialsJSON []byte
	// credentialsSet records whether GCP_CREDENTIALS_JSON was present at all,
	// which is what the health endpoint reports.
	credentialsSet bool

	MaxUploadBytes int64
}

// GetEnv is a helper to read an environment variable or return a default value.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		slog.Warn("Ignoring invalid integer environment variable", "key", key, "value", raw)
		return fallback
	}
	return value
}

// Load reads the configuration from the environment.
func Load() Config {
	cfg := Config{
		Port:     GetEnv("PORT", "8080"),
		LogLevel: GetEnv("LOG_LEVEL", "info"),

		GeminiAPIKey: GetEnv("GEMINI_API_KEY", ""),
		GeminiModel:  GetEnv("GEMINI_MODEL", DefaultModel),

		ProjectID:           GetEnv("GCP_PROJECT_ID", ""),
		BucketName:          GetEnv("GCS_BUCKET_NAME", ""),
		BigQueryDataset:     GetEnv("BIGQUERY_DATASET", ""),
		BigQueryTable:       GetEnv("BIGQUERY_TABLE", DefaultMetadataTable),
		FirestoreCollection: GetEnv("FIRESTORE_COLLECTION", ""),

		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_MB", 32)) << 20,
	}

	raw := GetEnv("GCP_CREDENTIALS_JSON", "")
	cfg.credentialsSet = raw != ""
	cfg.CredentialsJSON = parseCredentials(raw)
	return cfg
}

func parseCredentials(raw string) []byte {
	if raw == "" {
		slog.Warn("GCP_CREDENTIALS_JSON environment variable is not set.")
		return nil
	}
	var info map[string]any
	if err := json.Unmarshal([]byte(raw), &info); err != nil {
		slog.Error("Failed to parse GCP_CREDENTIALS_JSON. Check for formatting errors.", "error", err)
		return nil
	}
	if _, ok := info["type"]; !ok {
		slog.Error("GCP_CREDENTIALS_JSON does not look like a service account key.", "keys", len(info))
		return nil
	}
	slog.Info("GCP credentials loaded successfully.")
	return []byte(raw)
}

// WithCredentials returns a copy of c carrying the given credentials blob.
// Tests use it to build configurations without touching the environment.
func (c Config) WithCredentials(blob []byte) Config {
	c.CredentialsJSON = blob
	c.credentialsSet = len(blob) > 0
	return c
}

// GeminiConfigured reports whether a model API key is present.
func (c Config) GeminiConfigured() bool {
	return c.GeminiAPIKey != ""
}

// GCPConfigured reports whether GCP credentials were supplied, regardless of
// whether they parsed.
func (c Config) GCPConfigured() bool {
	return c.credentialsSet
}

// HasCredentials reports whether usable GCP credentials were loaded.
func (c Config) HasCredentials() bool {
	return len(c.CredentialsJSON) > 0
}
