// README: Postgres connection pool initialization using pgxpool, with startup retry.
package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// NewDB opens a pool and pings it, retrying with exponential backoff until
// maxElapsed passes.
func NewDB(ctx context.Context, dsn string, maxElapsed time.Duration, logger *zap.Logger) (*pgxpool.Pool, error) {
	const operation = "infra.NewDB"

	var pool *pgxpool.Pool
	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = maxElapsed
	policy.MaxInterval = 5 * time.Second

	logger.Info("Connecting to PostgreSQL...")
	err := backoff.RetryNotify(
		func() error {
			p, err := pgxpool.New(ctx, dsn)
			if err != nil {
				return backoff.Permanent(fmt.Errorf("parse dsn: %w", err))
			}
			if err := p.Ping(ctx); err != nil {
				p.Close()
				return fmt.Errorf("ping: %w", err)
			}
			pool = p
			return nil
		},
		backoff.WithContext(policy, ctx),
		func(err error, next time.Duration) {
			logger.Warn("PostgreSQL connection failed, retrying...",
				zap.Error(err),
				zap.Duration("next_attempt_in", next))
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect after retries: %w", operation, err)
	}

	logger.Info("Successfully connected to PostgreSQL")
	return pool, nil
}
