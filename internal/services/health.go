package services

import (
	"github.com/Lllllllleong/legaldocassistant/internal/config"
	"github.com/Lllllllleong/legaldocassistant/internal/models"
)

// Health reports configuration presence only; it never contacts a backend.
func Health(cfg config.Config) models.HealthResponse {
	return models.HealthResponse{
		Status:           "healthy",
		Message:          "Legal assistant API is running.",
		GeminiConfigured: cfg.GeminiConfigured(),
		GCPConfigured:    cfg.GCPConfigured(),
	}
}
