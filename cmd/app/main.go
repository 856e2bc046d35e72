package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"logistics/cmd"
	httpadapter "logistics/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	router, err := app.CreateRouter()
	if err != nil {
		log.Fatalf("Failed to build HTTP router: %v", err)
	}

	jobManager, err := app.CreateJobManager()
	if err != nil {
		log.Fatalf("Failed to create jobs: %v", err)
	}

	stopRelay, err := app.CreateNatsRelay()
	if err != nil {
		log.Fatalf("Failed to start NATS relay: %v", err)
	}

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "port", configs.HTTPPort)
		serverErr <- httpadapter.Start(router, configs.HTTPPort)
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown requested")
	case err := <-serverErr:
		if err != nil {
			logger.Error("HTTP server failed", "error", err)
		}
	}

	jobManager.StopAll()
	app.Hub().Close()
	if stopRelay != nil {
		stopRelay()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := router.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	logger.Info("Stopped")
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	configs, err := cmd.LoadConfig(os.Getenv("CONFIG_FILE"), os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return configs
}
