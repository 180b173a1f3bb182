// Package reservations owns every read and mutation of the hotel snapshot.
// Adapters call into Service and translate its *domain.Error results.
package reservations

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/preston-bernstein/travel-reservations-service/internal/domain"
	"github.com/preston-bernstein/travel-reservations-service/internal/events"
	"github.com/preston-bernstein/travel-reservations-service/internal/logging"
	"github.com/preston-bernstein/travel-reservations-service/internal/metrics"
	"github.com/preston-bernstein/travel-reservations-service/internal/validation"
)

const tracerName = "github.com/preston-bernstein/travel-reservations-service/internal/app/reservations"

// Operation names used for metrics, spans and log fields.
const (
	OpListRooms        = "list_rooms"
	OpGetRoom          = "get_room"
	OpListReservations = "list_reservations"
	OpGetReservation   = "get_reservation"
	OpCreate           = "create_reservation"
	OpUpdate           = "update_reservation"
	OpCancel           = "cancel_reservation"
	OpSearch           = "search_available_rooms"
	OpSnapshot         = "snapshot"
)

// Store defines the contract for loading and persisting the whole snapshot.
type Store interface {
	Load(ctx context.Context) (domain.Snapshot, error)
	Save(ctx context.Context, snap domain.Snapshot) error
}

// Service coordinates reservation operations against a Store.
// A single mutex serializes every load-mutate-save cycle in this process.
type Service struct {
	mu        sync.Mutex
	store     Store
	logger    *slog.Logger
	metrics   *metrics.Recorder
	publisher events.Publisher
	tracer    trace.Tracer
	now       func() time.Time
	newID     func() string
}

// Option customizes a Service.
type Option func(*Service)

// WithLogger sets the fallback logger used when the context carries none.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithRecorder attaches a metrics recorder.
func WithRecorder(rec *metrics.Recorder) Option {
	return func(s *Service) { s.metrics = rec }
}

// WithPublisher sets where lifecycle events go after a successful save.
func WithPublisher(pub events.Publisher) Option {
	return func(s *Service) {
		if pub != nil {
			s.publisher = pub
		}
	}
}

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides reservation id generation.
func WithIDGenerator(gen func() string) Option {
	return func(s *Service) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// NewService constructs a Service backed by store.
func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store:     store,
		publisher: events.NopPublisher{},
		tracer:    otel.Tracer(tracerName),
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListRooms returns the catalog in stored order.
func (s *Service) ListRooms(ctx context.Context) (rooms []domain.Room, err error) {
	ctx, done := s.begin(ctx, OpListRooms)
	defer func() { done(err) }()

	snap, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Rooms, nil
}

// GetRoom returns the room with the given id.
func (s *Service) GetRoom(ctx context.Context, id int) (room domain.Room, err error) {
	ctx, done := s.begin(ctx, OpGetRoom)
	defer func() { done(err) }()

	snap, err := s.read(ctx)
	if err != nil {
		return domain.Room{}, err
	}
	idx, derr := validation.FindRoom(snap.Rooms, id)
	if derr != nil {
		return domain.Room{}, derr
	}
	return snap.Rooms[idx], nil
}

// ListReservations returns every active reservation in stored order.
func (s *Service) ListReservations(ctx context.Context) (list []domain.Reservation, err error) {
	ctx, done := s.begin(ctx, OpListReservations)
	defer func() { done(err) }()

	snap, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Reservations, nil
}

// GetReservation returns the reservation with the given id.
func (s *Service) GetReservation(ctx context.Context, id string) (res domain.Reservation, err error) {
	ctx, done := s.begin(ctx, OpGetReservation)
	defer func() { done(err) }()

	snap, err := s.read(ctx)
	if err != nil {
		return domain.Reservation{}, err
	}
	idx, derr := validation.FindReservation(snap.Reservations, id)
	if derr != nil {
		return domain.Reservation{}, derr
	}
	return snap.Reservations[idx], nil
}

// SearchAvailableRooms filters the catalog by availability floor and price ceiling.
func (s *Service) SearchAvailableRooms(ctx context.Context, criteria domain.SearchCriteria) (result domain.SearchResult, err error) {
	ctx, done := s.begin(ctx, OpSearch)
	defer func() { done(err) }()

	snap, err := s.read(ctx)
	if err != nil {
		return domain.SearchResult{}, err
	}
	matches := make([]domain.Room, 0, len(snap.Rooms))
	for _, room := range snap.Rooms {
		if criteria.Matches(room) {
			matches = append(matches, room)
		}
	}
	return domain.SearchResult{TotalFound: len(matches), Rooms: matches}, nil
}

// Snapshot returns the full persisted document.
func (s *Service) Snapshot(ctx context.Context) (snap domain.Snapshot, err error) {
	ctx, done := s.begin(ctx, OpSnapshot)
	defer func() { done(err) }()

	return s.read(ctx)
}

func (s *Service) read(ctx context.Context) (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// load must be called with s.mu held.
func (s *Service) load(ctx context.Context) (domain.Snapshot, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return domain.Snapshot{}, domain.Internal(fmt.Errorf("load snapshot: %w", err))
	}
	return snap.Normalize(), nil
}

// save must be called with s.mu held.
func (s *Service) save(ctx context.Context, snap domain.Snapshot) error {
	if err := s.store.Save(ctx, snap); err != nil {
		return domain.Internal(fmt.Errorf("save snapshot: %w", err))
	}
	return nil
}

func (s *Service) publish(ctx context.Context, evt events.Event) {
	if err := s.publisher.Publish(ctx, evt); err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "publish reservation event failed",
			"event_type", string(evt.Type),
			logging.FieldReservationID, evt.Reservation.ID,
			"error", err,
		)
	}
}
