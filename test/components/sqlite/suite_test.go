package integration

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bankmanager/internal/sqlite"
)

type TestSuite struct {
	DB     *sql.DB
	DBPath string
	Client *sqlite.Client
}

func NewTestSuite(t *testing.T) *TestSuite {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test_bank.db")

	config := sqlite.Config{
		DatabasePath: dbPath,
		MaxOpenConns: 4,
		MaxIdleConns: 2,
		BusyTimeout:  5 * time.Second,
		EnableWAL:    true,
	}

	client, err := sqlite.NewClient(context.Background(), config)
	require.NoError(t, err, "failed to create test client")
	t.Cleanup(func() { client.Close() })

	require.NoError(t, client.Migrate(context.Background()), "failed to create schema")

	return &TestSuite{
		DB:     client.DB(),
		DBPath: dbPath,
		Client: client,
	}
}

func (s *TestSuite) Count(t *testing.T, table string) int {
	t.Helper()

	var count int
	err := s.DB.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count)
	require.NoError(t, err, "failed to count %s", table)

	return count
}

func (s *TestSuite) Exec(t *testing.T, query string, args ...any) {
	t.Helper()

	_, err := s.DB.Exec(query, args...)
	require.NoError(t, err)
}
