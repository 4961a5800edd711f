package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"bankmanager/internal/core"
)

const formatVersion = 1

type meta struct {
	Version  int       `json:"version"`
	Revision uuid.UUID `json:"revision"`
	SavedAt  time.Time `json:"saved_at"`
}

type document struct {
	Meta      meta          `json:"meta"`
	Directory core.Snapshot `json:"directory"`
}

// Store writes the directory as a single indented JSON document.
type Store struct {
	path string
	now  func() time.Time
}

func NewStore(config Config) *Store {
	return &Store{
		path: config.Path,
		now:  time.Now,
	}
}

func (s *Store) Load(_ context.Context) (core.Snapshot, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return core.Snapshot{}, core.ErrSnapshotNotFound
		}
		return core.Snapshot{}, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	var doc document
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return core.Snapshot{}, fmt.Errorf("%w: decode %s: %v", core.ErrCorruptSnapshot, s.path, err)
	}
	if doc.Meta.Version != formatVersion {
		return core.Snapshot{}, fmt.Errorf("%w: unsupported version %d", core.ErrCorruptSnapshot, doc.Meta.Version)
	}

	return doc.Directory, nil
}

// Save writes to a temporary file next to the target and renames it into
// place, so a failed write leaves the previous document intact.
func (s *Store) Save(_ context.Context, snap core.Snapshot) error {
	doc := document{
		Meta: meta{
			Version:  formatVersion,
			Revision: uuid.New(),
			SavedAt:  s.now().UTC(),
		},
		Directory: snap,
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode directory: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}

	return nil
}
