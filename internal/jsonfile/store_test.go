package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"bankmanager/internal/core"
)

func TestStore_LoadMissingFile(t *testing.T) {
	t.Parallel()

	store := NewStore(Config{Path: filepath.Join(t.TempDir(), "bank.json")})

	_, err := store.Load(context.Background())
	require.ErrorIs(t, err, core.ErrSnapshotNotFound)
}

func TestStore_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bank.json")
	store := NewStore(Config{Path: path})
	store.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }

	snap := core.Snapshot{Banks: []core.BankSnapshot{
		{
			ID:   1234,
			Name: "Acme",
			Branches: []core.BranchSnapshot{
				{
					Code:    123,
					Name:    "Downtown",
					Address: core.AddressSnapshot{Street: "1 Elm", State: "IL", Zip: "62704"},
					Customers: []core.CustomerSnapshot{
						{
							ID:      12345,
							Name:    "Alice",
							Address: core.AddressSnapshot{Street: "2 Oak", City: "Austin", State: "TX", Zip: "73301", Valid: true},
							Accounts: []core.AccountSnapshot{
								{Number: 123456789, Balance: decimal.RequireFromString("10.05")},
							},
						},
					},
				},
			},
		},
	}}

	require.NoError(t, store.Save(context.Background(), snap))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, loaded.Banks, 1)
	br := loaded.Banks[0].Branches[0]
	require.Equal(t, snap.Banks[0].Branches[0].Address, br.Address)
	require.Equal(t, snap.Banks[0].Branches[0].Customers[0].Address, br.Customers[0].Address)
	require.True(t, decimal.RequireFromString("10.05").Equal(br.Customers[0].Accounts[0].Balance))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"saved_at": "2024-03-01T12:00:00Z"`)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files are cleaned up")
}

func TestStore_LoadCorrupt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "not_json", content: "banks: []"},
		{name: "truncated", content: `{"meta": {"version": 1}, "directory": {"banks": [`},
		{name: "unknown_version", content: `{"meta": {"version": 7}, "directory": {"banks": []}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "bank.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := NewStore(Config{Path: path}).Load(context.Background())
			require.ErrorIs(t, err, core.ErrCorruptSnapshot)
		})
	}
}

func TestStore_SaveIntoMissingDirectory(t *testing.T) {
	t.Parallel()

	store := NewStore(Config{Path: filepath.Join(t.TempDir(), "missing", "bank.json")})
	require.Error(t, store.Save(context.Background(), core.Snapshot{}))
}
