package snapshots

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/preston-bernstein/travel-reservations-service/internal/domain"
	"github.com/preston-bernstein/travel-reservations-service/internal/logging"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 100 * time.Millisecond
)

// Store is the whole-snapshot persistence contract shared by every backend.
type Store interface {
	Load(ctx context.Context) (domain.Snapshot, error)
	Save(ctx context.Context, snap domain.Snapshot) error
}

type backoffFunc func(attempt int) time.Duration

// RetryingStore retries failed loads and saves against a networked backend.
// Saves overwrite the whole document, so repeating one is safe.
type RetryingStore struct {
	inner       Store
	logger      *slog.Logger
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingStore wraps inner with linear backoff. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingStore(inner Store, logger *slog.Logger, maxAttempts int, backoff time.Duration) *RetryingStore {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &RetryingStore{
		inner:       inner,
		logger:      logger,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *RetryingStore) Load(ctx context.Context) (domain.Snapshot, error) {
	var snap domain.Snapshot
	err := r.do(ctx, "load", func() error {
		var err error
		snap, err = r.inner.Load(ctx)
		return err
	})
	return snap, err
}

func (r *RetryingStore) Save(ctx context.Context, snap domain.Snapshot) error {
	return r.do(ctx, "save", func() error {
		return r.inner.Save(ctx, snap)
	})
}

func (r *RetryingStore) do(ctx context.Context, op string, fn func() error) error {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		if permanent(err) {
			return err
		}
		if attempt == r.maxAttempts {
			break
		}

		logging.Warn(logging.FromContext(ctx, r.logger), "snapshot "+op+" retry",
			"attempt", attempt, "max_attempts", r.maxAttempts, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.backoffFn(attempt)):
		}
	}

	logging.Warn(logging.FromContext(ctx, r.logger), "snapshot "+op+" failed",
		"attempts", r.maxAttempts, "error", lastErr)
	return lastErr
}

// permanent reports failures that another attempt cannot fix.
func permanent(err error) bool {
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, ErrCorruptSnapshot) ||
		errors.Is(err, ErrNotConfigured)
}
