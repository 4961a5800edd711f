package storage

import (
	"context"
	"fmt"
	"io"

	"bankmanager/internal/core"
	"bankmanager/internal/jsonfile"
	"bankmanager/internal/sqlite"
)

const (
	DriverSQLite = "sqlite"
	DriverJSON   = "json"
)

type Config struct {
	Driver   string `envconfig:"STORAGE_DRIVER" default:"sqlite"`
	Database sqlite.Config
	JSON     jsonfile.Config
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open builds the snapshot store selected by config.Driver. The returned
// closer releases the underlying database, if any.
func Open(ctx context.Context, config Config) (core.Storage, io.Closer, error) {
	switch config.Driver {
	case DriverSQLite:
		client, err := sqlite.NewClient(ctx, config.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create db client: %w", err)
		}
		if err := client.Migrate(ctx); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
		}

		return sqlite.NewDirectoryStore(client.DB()), client, nil
	case DriverJSON:
		return jsonfile.NewStore(config.JSON), nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", config.Driver)
	}
}
