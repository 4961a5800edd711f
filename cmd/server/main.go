package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"bankmanager/config"
	"bankmanager/internal/core"
	"bankmanager/internal/http"
	"bankmanager/internal/metrics"
	"bankmanager/internal/storage"
)

func main() {
	ctx := context.Background()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.Level(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	logger.InfoContext(ctx, "Starting application", "storage", cfg.Storage.Driver)

	store, closer, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		logger.ErrorContext(ctx, "failed to open storage", "error", err)
		os.Exit(1)
	}
	defer closer.Close()

	m := metrics.New()
	service := core.NewService(store, logger, core.WithRecorder(m))
	service.Load(ctx)

	httpServer := http.NewServer(service, logger, m, cfg.HTTP)

	if err = httpServer.Start(ctx); err != nil {
		logger.ErrorContext(ctx, "failed to start http server", "error", err)
		os.Exit(1)
	}

	<-stop

	logger.InfoContext(ctx, "Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err = httpServer.Stop(shutdownCtx); err != nil {
		logger.ErrorContext(ctx, "Error stopping HTTP server", "error", err)
	}

	if service.Dirty() {
		if err = service.Save(ctx); err != nil {
			logger.ErrorContext(ctx, "Session not saved", "error", err)
		}
	}

	logger.InfoContext(ctx, "Application shutdown complete")
}
