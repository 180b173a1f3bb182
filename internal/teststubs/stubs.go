package teststubs

import (
	"context"
	"sync"

	"github.com/preston-bernstein/travel-reservations-service/internal/domain"
	"github.com/preston-bernstein/travel-reservations-service/internal/events"
)

// StubStore is a test double for the reservation snapshot store.
// LoadErr and SaveErr force failures; Snap holds the last saved snapshot.
type StubStore struct {
	mu        sync.Mutex
	Snap      domain.Snapshot
	LoadErr   error
	SaveErr   error
	LoadCalls int
	SaveCalls int
}

// Load returns a copy of Snap or LoadErr.
func (s *StubStore) Load(ctx context.Context) (domain.Snapshot, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.LoadCalls++
	if s.LoadErr != nil {
		return domain.Snapshot{}, s.LoadErr
	}
	return s.Snap.Clone(), nil
}

// Save records snap unless SaveErr is set.
func (s *StubStore) Save(ctx context.Context, snap domain.Snapshot) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SaveCalls++
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Snap = snap.Clone()
	return nil
}

// StubPublisher records published events and optionally fails.
type StubPublisher struct {
	mu     sync.Mutex
	Err    error
	events []events.Event
}

// Publish records evt and returns Err.
func (p *StubPublisher) Publish(ctx context.Context, evt events.Event) error {
	_ = ctx
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return p.Err
}

// Events returns a copy of everything published so far.
func (p *StubPublisher) Events() []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.Event, len(p.events))
	copy(out, p.events)
	return out
}
