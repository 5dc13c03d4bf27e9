package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"coolassistant.app/internal/app"
)

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}

	application, err := app.NewApplication()
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	cfg := application.Config()
	slog.Info("Configuration loaded successfully",
		"port", cfg.Server.Port,
		"db_driver", cfg.Database.Driver,
		"cache", cfg.Cache.Type.String(),
		"cooldown_policy", cfg.Survey.CooldownPolicy)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := setupGracefulShutdown(cancel, application)

	slog.Info("Starting Cool Assistant...")
	if err := application.Start(ctx); err != nil {
		slog.Error("Failed to start application", "error", err)
		os.Exit(1)
	}
	<-done
}

// setupGracefulShutdown stops the application on SIGINT or SIGTERM. The
// returned channel closes once shutdown has finished.
func setupGracefulShutdown(cancel context.CancelFunc, application *app.Application) <-chan struct{} {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		defer close(done)
		<-signals
		slog.Info("Received shutdown signal...")

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := application.Shutdown(shutdownCtx); err != nil {
			slog.Error("Error during graceful shutdown", "error", err)
		}
	}()

	return done
}
