// Package app assembles the service from its configuration.
package app

import (
	"context"
	"net/http"

	"github.com/Lllllllleong/legaldocassistant/internal/config"
	"github.com/Lllllllleong/legaldocassistant/internal/extract"
	"github.com/Lllllllleong/legaldocassistant/internal/gcp"
	"github.com/Lllllllleong/legaldocassistant/internal/metrics"
	"github.com/Lllllllleong/legaldocassistant/internal/server"
	"github.com/Lllllllleong/legaldocassistant/internal/services"
)

const ServiceName = "legal-api"

type App struct {
	Config  config.Config
	Handler http.Handler

	clients *gcp.Clients
}

// New builds every client the configuration allows and wires the HTTP
// handler on top of them. Missing optional clients are logged and skipped.
func New(ctx context.Context, cfg config.Config) *App {
	clients := gcp.NewClients(ctx, cfg)

	// Interfaces are only populated from non-nil clients so that a missing
	// client is seen as nil rather than a typed nil pointer.
	var ocr extract.OCR
	if clients.OCR != nil {
		ocr = clients.OCR
	}
	var store services.ObjectStore
	if clients.Store != nil {
		store = clients.Store
	}
	var sinks []services.MetadataSink
	if clients.Warehouse != nil {
		sinks = append(sinks, clients.Warehouse)
	}
	if clients.Registry != nil {
		sinks = append(sinks, clients.Registry)
	}
	var model services.Model
	if clients.Gemini != nil {
		model = clients.Gemini
	}

	analyzer := services.NewAnalyzer(cfg, extract.New(ocr), model, services.NewUploader(store), services.NewMetadataLogger(sinks...))
	chatter := services.NewChatter(cfg, model)

	return &App{
		Config:  cfg,
		Handler: server.NewServer(cfg, analyzer, chatter, metrics.New(ServiceName)),
		clients: clients,
	}
}

// Close releases the external clients.
func (a *App) Close() {
	a.clients.Close()
}
