package snapshots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/travel-reservations-service/internal/domain"
)

// DefaultRedisKey is where the snapshot document lives when no key is configured.
const DefaultRedisKey = "hotel:snapshot"

// RedisStore keeps the whole snapshot as one JSON string value.
type RedisStore struct {
	client redis.Cmdable
	key    string
}

// NewRedisStore constructs a Redis-backed store. An empty key uses DefaultRedisKey.
func NewRedisStore(client redis.Cmdable, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key}
}

// Load reads the snapshot. A missing key yields an empty snapshot.
func (s *RedisStore) Load(ctx context.Context) (domain.Snapshot, error) {
	if s == nil || s.client == nil {
		return domain.Snapshot{}, ErrNotConfigured
	}
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.EmptySnapshot(), nil
		}
		return domain.Snapshot{}, fmt.Errorf("load snapshot %s: %w", s.key, err)
	}
	var snap domain.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("decode snapshot %s: %w: %w", s.key, ErrCorruptSnapshot, err)
	}
	return snap.Normalize(), nil
}

// Save overwrites the stored snapshot in full.
func (s *RedisStore) Save(ctx context.Context, snap domain.Snapshot) error {
	if s == nil || s.client == nil {
		return ErrNotConfigured
	}
	data, err := encode(snap)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("save snapshot %s: %w", s.key, err)
	}
	return nil
}
