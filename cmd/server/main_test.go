package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lllllllleong/legaldocassistant/internal/app"
)

func TestBootstrapLogsConfigLoadAsJSON(t *testing.T) {
	prevLogger, prevMode := slog.Default(), gin.Mode()
	t.Cleanup(func() {
		slog.SetDefault(prevLogger)
		gin.SetMode(prevMode)
	})
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("GCP_CREDENTIALS_JSON", `{"type":`)
	t.Setenv(gin.EnvGinMode, "")

	var buf bytes.Buffer
	cfg := bootstrap(&buf)

	assert.True(t, cfg.GCPConfigured())
	assert.False(t, cfg.HasCredentials())
	assert.Equal(t, gin.ReleaseMode, gin.Mode())

	var messages []string
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry), scanner.Text())
		assert.Equal(t, app.ServiceName, entry["service"])
		messages = append(messages, entry["msg"].(string))
	}
	assert.Contains(t, messages, "Failed to parse GCP_CREDENTIALS_JSON. Check for formatting errors.")
}
