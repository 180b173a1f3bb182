package testutil

import (
	"github.com/preston-bernstein/travel-reservations-service/internal/app/reservations"
	"github.com/preston-bernstein/travel-reservations-service/internal/domain"
	"github.com/preston-bernstein/travel-reservations-service/internal/store"
)

// NewServiceWithSnapshot builds a reservation service backed by an in-memory store
// preloaded with snap. The store is returned for assertions on persisted state.
func NewServiceWithSnapshot(snap domain.Snapshot, opts ...reservations.Option) (*reservations.Service, *store.MemoryStore) {
	ms := store.NewMemoryStore(snap)
	return reservations.NewService(ms, opts...), ms
}
