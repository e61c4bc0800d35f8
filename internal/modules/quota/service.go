package quota

import (
	"context"
	"fmt"
	"time"
)

// Counter increments a named counter that expires after ttl.
type Counter interface {
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

// Service enforces limit requests per client per window. Windows are aligned
// to the clock, so every client's window rolls over at the same instant.
type Service struct {
	counter Counter
	limit   int64
	window  time.Duration
	now     func() time.Time
}

func NewService(counter Counter, limit int64, window time.Duration) *Service {
	return &Service{counter: counter, limit: limit, window: window, now: time.Now}
}

// Allow counts one request for clientID. It returns ErrQuotaExceeded with a
// populated Decision once the limit is passed; any other error comes from the
// counter and leaves the decision to the caller.
func (s *Service) Allow(ctx context.Context, clientID string) (Decision, error) {
	now := s.now()
	bucket := now.UnixNano() / int64(s.window)
	resetIn := time.Unix(0, (bucket+1)*int64(s.window)).Sub(now)

	count, err := s.counter.Incr(ctx, windowKey(clientID, bucket), s.window)
	if err != nil {
		return Decision{}, fmt.Errorf("count request for %s: %w", clientID, err)
	}

	d := Decision{Count: count, Limit: s.limit, Remaining: max(s.limit-count, 0), ResetIn: resetIn}
	if count > s.limit {
		return d, ErrQuotaExceeded
	}
	return d, nil
}

func windowKey(clientID string, bucket int64) string {
	return fmt.Sprintf("%s:%d", clientID, bucket)
}
