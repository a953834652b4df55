package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	"github.com/Lllllllleong/legaldocassistant/internal/app"
	"github.com/Lllllllleong/legaldocassistant/internal/config"
	"github.com/Lllllllleong/legaldocassistant/internal/logging"
	"github.com/Lllllllleong/legaldocassistant/internal/server"
)

var (
	instance *app.App
	once     sync.Once
)

func init() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)
	server.UseReleaseMode()

	// Register the HTTP function. Deploy with --entry-point=LegalAssistant.
	functions.HTTP("LegalAssistant", legalAssistant)
}

// main lets the function be run locally: FUNCTION_TARGET=LegalAssistant go run ./cmd/function
func main() {
	port := config.GetEnv("PORT", "8080")
	if err := funcframework.Start(port); err != nil {
		slog.Error("funcframework.Start failed", "error", err)
		os.Exit(1)
	}
}

// legalAssistant is the Cloud Function entry point. Clients are built on the
// first invocation and reused by every later one.
func legalAssistant(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Load()
		logging.Setup(app.ServiceName, cfg.LogLevel)
		instance = app.New(context.Background(), cfg)
	})
	instance.Handler.ServeHTTP(w, r)
}
