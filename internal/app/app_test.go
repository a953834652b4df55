package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lllllllleong/legaldocassistant/internal/config"
	"github.com/Lllllllleong/legaldocassistant/internal/models"
)

func TestNewWithoutExternalServices(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a := New(context.Background(), config.Config{MaxUploadBytes: 1 << 20})
	defer a.Close()

	rec := httptest.NewRecorder()
	a.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var health models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.False(t, health.GeminiConfigured)
	assert.False(t, health.GCPConfigured)
}
