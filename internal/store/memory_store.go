package store

import (
	"context"
	"sync"

	"github.com/preston-bernstein/travel-reservations-service/internal/domain"
)

// MemoryStore keeps a thread-safe snapshot in memory. Loads and saves copy,
// so callers never share slices with the stored state.
type MemoryStore struct {
	mu    sync.RWMutex
	snap  domain.Snapshot
	saves int
}

// NewMemoryStore constructs a MemoryStore seeded with snap.
func NewMemoryStore(snap domain.Snapshot) *MemoryStore {
	return &MemoryStore{snap: snap.Normalize().Clone()}
}

// Load returns a copy of the current snapshot.
func (s *MemoryStore) Load(ctx context.Context) (domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.Snapshot{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snap.Clone(), nil
}

// Save replaces the stored snapshot with a copy of snap.
func (s *MemoryStore) Save(ctx context.Context, snap domain.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap = snap.Normalize().Clone()
	s.saves++
	return nil
}

// Saves reports how many times Save succeeded.
func (s *MemoryStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.saves
}
