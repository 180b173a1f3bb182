package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/travel-reservations-service/internal/app/reservations"
	"github.com/preston-bernstein/travel-reservations-service/internal/config"
	"github.com/preston-bernstein/travel-reservations-service/internal/domain"
	"github.com/preston-bernstein/travel-reservations-service/internal/events"
	"github.com/preston-bernstein/travel-reservations-service/internal/logging"
	"github.com/preston-bernstein/travel-reservations-service/internal/metrics"
	"github.com/preston-bernstein/travel-reservations-service/internal/snapshots"
	"github.com/preston-bernstein/travel-reservations-service/internal/store"
)

// Backend is the reservation service together with the resources it owns.
// Both the HTTP and the MCP processes build one.
type Backend struct {
	Service *reservations.Service
	closers []namedCloser
}

type namedCloser struct {
	name  string
	close func() error
}

// Overridable in tests.
var (
	dialAMQP      = func(url, queue string) (amqpPublisher, error) { return events.DialAMQP(url, queue) }
	newRedisStore = buildRedisStore
)

type amqpPublisher interface {
	events.Publisher
	Close() error
}

// NewBackend wires the configured store and event publisher into a reservation service.
// An unreachable broker degrades to logging events; an unreachable store is fatal.
func NewBackend(ctx context.Context, cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*Backend, error) {
	b := &Backend{}

	st, err := b.buildStore(ctx, cfg.Store, logger)
	if err != nil {
		return nil, err
	}
	pub := b.buildPublisher(cfg.Events, logger)

	b.Service = reservations.NewService(st,
		reservations.WithLogger(logger),
		reservations.WithRecorder(recorder),
		reservations.WithPublisher(pub),
	)
	return b, nil
}

func (b *Backend) buildStore(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (reservations.Store, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		seed, err := loadSeed(ctx, cfg.DataFile)
		if err != nil {
			return nil, err
		}
		logging.Info(logger, "using in-memory snapshot store", "seed", cfg.DataFile, "rooms", len(seed.Rooms))
		return store.NewMemoryStore(seed), nil
	case config.BackendRedis:
		st, client, err := newRedisStore(ctx, cfg.Redis, logger)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, namedCloser{name: "redis", close: client.Close})
		logging.Info(logger, "using redis snapshot store", "addr", cfg.Redis.Addr, "key", cfg.Redis.Key)
		return st, nil
	default:
		logging.Info(logger, "using file snapshot store", "path", cfg.DataFile)
		return snapshots.NewFSStore(cfg.DataFile), nil
	}
}

// loadSeed reads the initial memory snapshot from path. No path or a missing file starts empty.
func loadSeed(ctx context.Context, path string) (domain.Snapshot, error) {
	if path == "" {
		return domain.EmptySnapshot(), nil
	}
	snap, err := snapshots.NewFSStore(path).Load(ctx)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("seed memory store: %w", err)
	}
	return snap, nil
}

func buildRedisStore(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (reservations.Store, *redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis %s unreachable: %w", cfg.Addr, err)
	}
	return snapshots.NewRetryingStore(snapshots.NewRedisStore(client, cfg.Key), logger, 0, 0), client, nil
}

func (b *Backend) buildPublisher(cfg config.EventsConfig, logger *slog.Logger) events.Publisher {
	if cfg.AMQPURL == "" {
		return events.NewLogPublisher(logger)
	}
	pub, err := dialAMQP(cfg.AMQPURL, cfg.Queue)
	if err != nil {
		logging.Warn(logger, "event broker unavailable, logging events instead", "error", err)
		return events.NewLogPublisher(logger)
	}
	b.closers = append(b.closers, namedCloser{name: "amqp", close: pub.Close})
	logging.Info(logger, "publishing reservation events", "queue", cfg.Queue)
	return pub
}

// Close releases owned connections in reverse order of acquisition.
func (b *Backend) Close() error {
	if b == nil {
		return nil
	}
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		c := b.closers[i]
		if err := c.close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", c.name, err))
		}
	}
	b.closers = nil
	return errors.Join(errs...)
}
