package main

import (
	"context"
	"log/slog"
	"os"

	"bankmanager/config"
	"bankmanager/internal/console"
	"bankmanager/internal/core"
	"bankmanager/internal/storage"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// stdout belongs to the menus.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(cfg.LogLevel),
	}))

	store, closer, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		logger.ErrorContext(ctx, "failed to open storage", "error", err)
		os.Exit(1)
	}
	defer closer.Close()

	service := core.NewService(store, logger)
	service.Load(ctx)

	if err := console.New(service, os.Stdin, os.Stdout).Run(ctx); err != nil {
		logger.ErrorContext(ctx, "console session ended with error", "error", err)
		closer.Close()
		os.Exit(1)
	}
}
