package snapshots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/preston-bernstein/travel-reservations-service/internal/domain"
)

// FSStore persists the whole snapshot as one JSON document on disk.
type FSStore struct {
	path string
}

// NewFSStore constructs a file-backed store at path.
func NewFSStore(path string) *FSStore {
	return &FSStore{path: path}
}

// Path exposes the backing file path.
func (s *FSStore) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Load reads the snapshot. A missing file yields an empty snapshot.
func (s *FSStore) Load(ctx context.Context) (domain.Snapshot, error) {
	if s == nil || s.path == "" {
		return domain.Snapshot{}, ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return domain.Snapshot{}, err
	}

	var snap domain.Snapshot
	if err := s.decodeFile(s.path, &snap); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.EmptySnapshot(), nil
		}
		return domain.Snapshot{}, fmt.Errorf("load snapshot %s: %w", s.path, err)
	}
	return snap.Normalize(), nil
}

// Save overwrites the persisted snapshot in full.
func (s *FSStore) Save(ctx context.Context, snap domain.Snapshot) error {
	if s == nil || s.path == "" {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := encode(snap)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("save snapshot %s: %w", s.path, err)
	}
	return nil
}

func (s *FSStore) decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(payload); err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	return nil
}
