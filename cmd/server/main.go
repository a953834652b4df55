package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Lllllllleong/legaldocassistant/internal/app"
	"github.com/Lllllllleong/legaldocassistant/internal/config"
	"github.com/Lllllllleong/legaldocassistant/internal/logging"
	"github.com/Lllllllleong/legaldocassistant/internal/server"
)

func main() {
	cfg := bootstrap(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(ctx, cfg)
	defer a.Close()

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      a.Handler,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Legal assistant API listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("API server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("API shutdown error", "error", err)
	}
}

// bootstrap installs the JSON logger before anything else logs, then loads
// the configuration. Local runs read a .env file; in Cloud Run the variables
// come from the environment.
func bootstrap(w io.Writer) config.Config {
	_ = godotenv.Load()

	slog.SetDefault(logging.New(w, app.ServiceName, config.GetEnv("LOG_LEVEL", "info")))
	server.UseReleaseMode()

	return config.Load()
}
