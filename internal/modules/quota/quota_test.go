// README: Quota tests: window accounting against an in-memory counter, plus an optional Redis round trip.
package quota

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type memCounter struct {
	counts map[string]int64
	err    error
}

func (m *memCounter) Incr(_ context.Context, key string, _ time.Duration) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.counts == nil {
		m.counts = make(map[string]int64)
	}
	m.counts[key]++
	return m.counts[key], nil
}

func newTestService(c Counter, limit int64, at *time.Time) *Service {
	s := NewService(c, limit, time.Minute)
	s.now = func() time.Time { return *at }
	return s
}

func TestAllow_LimitBoundary(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 15, 0, time.UTC)
	s := newTestService(&memCounter{}, 3, &now)
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		d, err := s.Allow(ctx, "10.0.0.1")
		if err != nil {
			t.Fatalf("request %d: unexpected error %v", i, err)
		}
		if d.Count != i || d.Remaining != 3-i {
			t.Errorf("request %d: decision %+v", i, d)
		}
	}

	d, err := s.Allow(ctx, "10.0.0.1")
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("4th request error = %v, want ErrQuotaExceeded", err)
	}
	if d.Remaining != 0 || d.ResetIn != 45*time.Second {
		t.Errorf("decision = %+v, want 0 remaining and 45s reset", d)
	}
}

func TestAllow_ClientsAreIndependent(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	s := newTestService(&memCounter{}, 1, &now)
	ctx := context.Background()

	if _, err := s.Allow(ctx, "a"); err != nil {
		t.Fatalf("a: %v", err)
	}
	if _, err := s.Allow(ctx, "b"); err != nil {
		t.Fatalf("b: %v", err)
	}
	if _, err := s.Allow(ctx, "a"); !errors.Is(err, ErrQuotaExceeded) {
		t.Errorf("a again: error = %v, want ErrQuotaExceeded", err)
	}
}

func TestAllow_WindowRollsOver(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 59, 0, time.UTC)
	s := newTestService(&memCounter{}, 1, &now)
	ctx := context.Background()

	if _, err := s.Allow(ctx, "a"); err != nil {
		t.Fatalf("first: %v", err)
	}
	now = now.Add(time.Second)
	d, err := s.Allow(ctx, "a")
	if err != nil {
		t.Fatalf("next window: %v", err)
	}
	if d.Count != 1 || d.ResetIn != time.Minute {
		t.Errorf("decision = %+v", d)
	}
}

func TestAllow_CounterError(t *testing.T) {
	now := time.Now()
	boom := errors.New("connection refused")
	s := newTestService(&memCounter{err: boom}, 5, &now)

	_, err := s.Allow(context.Background(), "a")
	if !errors.Is(err, boom) || errors.Is(err, ErrQuotaExceeded) {
		t.Errorf("error = %v, want wrapped counter error", err)
	}
}

func TestStore_Redis(t *testing.T) {
	addr := os.Getenv("SENSEI_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("SENSEI_TEST_REDIS_ADDR not set; skipping redis test")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	store := NewStore(client)
	key := "test:" + time.Now().UTC().Format("150405.000000")
	t.Cleanup(func() { _ = store.Reset(context.Background(), key) })

	for want := int64(1); want <= 3; want++ {
		got, err := store.Incr(ctx, key, time.Minute)
		if err != nil {
			t.Fatalf("Incr: %v", err)
		}
		if got != want {
			t.Errorf("Incr = %d, want %d", got, want)
		}
	}

	ttl, err := client.TTL(ctx, keyPrefix+key).Result()
	if err != nil {
		t.Fatalf("TTL: %v", err)
	}
	if ttl <= 0 || ttl > time.Minute {
		t.Errorf("ttl = %v, want within one minute", ttl)
	}
}
