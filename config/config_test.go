package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bankmanager/internal/storage"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, -4, cfg.LogLevel)
	require.Equal(t, storage.DriverSQLite, cfg.Storage.Driver)
	require.Equal(t, "bank.db", cfg.Storage.Database.DatabasePath)
	require.Equal(t, "bank.json", cfg.Storage.JSON.Path)
	require.Equal(t, "localhost:8080", cfg.HTTP.Address)
	require.Equal(t, 10*time.Second, cfg.HTTP.Timeout)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", storage.DriverJSON)
	t.Setenv("JSON_PATH", "/tmp/directory.json")
	t.Setenv("HTTP_ADDRESS", ":9090")
	t.Setenv("LOG_LEVEL", "0")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 0, cfg.LogLevel)
	require.Equal(t, storage.DriverJSON, cfg.Storage.Driver)
	require.Equal(t, "/tmp/directory.json", cfg.Storage.JSON.Path)
	require.Equal(t, ":9090", cfg.HTTP.Address)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "soon")

	_, err := Load()
	require.ErrorContains(t, err, "failed to process config")
}
