package cart

import (
	"context"
	"errors"
	"time"

	"adey-market-backend/pkg/cache"
)

// One snapshot per customer.
const snapshotKeyPrefix = "cart-storage:"

// RedisSnapshotStore persists cart snapshots in Redis, write-through on
// every mutation. A zero ttl keeps snapshots until explicitly deleted.
type RedisSnapshotStore struct {
	cache *cache.RedisCache
	ttl   time.Duration
}

func NewRedisSnapshotStore(c *cache.RedisCache, ttl time.Duration) *RedisSnapshotStore {
	return &RedisSnapshotStore{cache: c, ttl: ttl}
}

func (s *RedisSnapshotStore) Save(ctx context.Context, customerID string, state State) error {
	data, err := EncodeSnapshot(state)
	if err != nil {
		return err
	}
	return s.cache.SetRaw(ctx, snapshotKeyPrefix+customerID, data, s.ttl)
}

// Load returns the persisted state for customerID. ok is false when no
// snapshot exists. Decode failures (corrupt or incompatible snapshots) are
// returned as errors so the caller can fall back to an empty cart.
func (s *RedisSnapshotStore) Load(ctx context.Context, customerID string) (State, bool, error) {
	data, err := s.cache.GetRaw(ctx, snapshotKeyPrefix+customerID)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return State{}, false, nil
		}
		return State{}, false, err
	}

	state, err := DecodeSnapshot(data)
	if err != nil {
		return State{}, false, err
	}
	return state, true, nil
}

func (s *RedisSnapshotStore) Delete(ctx context.Context, customerID string) error {
	return s.cache.Delete(ctx, snapshotKeyPrefix+customerID)
}
