// README: Redis client initialization for the request quota, with startup retry.
package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type RedisOptions struct {
	Addr       string
	Password   string
	DB         int
	MaxElapsed time.Duration
}

// NewRedis builds a client and waits for PING to succeed.
func NewRedis(ctx context.Context, opts RedisOptions, logger *zap.Logger) (*redis.Client, error) {
	const operation = "infra.NewRedis"

	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = opts.MaxElapsed
	policy.MaxInterval = 5 * time.Second

	err := backoff.RetryNotify(
		func() error {
			return client.Ping(ctx).Err()
		},
		backoff.WithContext(policy, ctx),
		func(err error, next time.Duration) {
			logger.Warn("Redis ping failed, retrying...",
				zap.String("addr", opts.Addr),
				zap.Error(err),
				zap.Duration("next_attempt_in", next))
		},
	)
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	logger.Info("Connected to Redis", zap.String("addr", opts.Addr))
	return client, nil
}
