// README: Quota counters backed by Redis INCR with per-window expiry.
package quota

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "sensei:quota:"

type Store struct {
	redis *redis.Client
}

func NewStore(redis *redis.Client) *Store {
	return &Store{redis: redis}
}

// Incr bumps key and sets its expiry on first use in one round trip.
func (s *Store) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	pipe := s.redis.TxPipeline()
	incr := pipe.Incr(ctx, keyPrefix+key)
	pipe.ExpireNX(ctx, keyPrefix+key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// Reset drops a counter. Used by tests and operators.
func (s *Store) Reset(ctx context.Context, key string) error {
	return s.redis.Del(ctx, keyPrefix+key).Err()
}
