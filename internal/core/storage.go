package core

import (
	"context"
)

//go:generate go tool go.uber.org/mock/mockgen -source=storage.go -destination=storage_mock.go -package=core

// Storage persists whole-directory snapshots. Load returns ErrSnapshotNotFound
// when nothing has been saved yet.
type Storage interface {
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, snapshot Snapshot) error
}
