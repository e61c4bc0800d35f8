// README: Smoke cases: diagnosis and pricing scenarios, validation, infrastructure and load checks.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
	StatusSkip = "SKIP"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
	db    *pgxpool.Pool
	redis *redis.Client
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name string
	Run  func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	if r.cfg.DSN != "" {
		if db, err := pgxpool.New(ctx, r.cfg.DSN); err == nil {
			r.db = db
		}
	}
	if r.cfg.RedisAddr != "" {
		r.redis = redis.NewClient(&redis.Options{Addr: r.cfg.RedisAddr})
	}

	tests := r.cases()
	results := make([]Result, 0, len(tests))

	for _, tc := range tests {
		res := tc.Run(ctx, r)
		res.Name = tc.Name
		results = append(results, res)
		fmt.Printf("%-5s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency)
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}

	if r.db != nil {
		r.db.Close()
	}
	if r.redis != nil {
		_ = r.redis.Close()
	}
	return results
}

func (r *Runner) cases() []TestCase {
	base := r.cfg.BaseURL + "/api/sensei"
	return []TestCase{
		{
			Name: "Env: Postgres catalog snapshots",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.db == nil {
					return Result{Status: StatusSkip, Note: "dsn not configured"}
				}
				var n int
				if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM catalog_snapshots").Scan(&n); err != nil {
					return Result{Status: StatusFail, Note: err.Error()}
				}
				return Result{Status: StatusPass, Note: fmt.Sprintf("snapshots=%d", n)}
			},
		},
		{
			Name: "Env: Redis quota counters",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.redis == nil {
					return Result{Status: StatusSkip, Note: "redis not configured"}
				}
				keys, err := r.redis.Keys(ctx, "sensei:quota:*").Result()
				if err != nil {
					return Result{Status: StatusFail, Note: err.Error()}
				}
				return Result{Status: StatusPass, Note: fmt.Sprintf("live_counters=%d", len(keys))}
			},
		},

		getCase("Health: catalog loaded", base+"/health", http.StatusOK, map[string]any{
			"status": "healthy",
		}),

		postCase("Scenario A: clicking no-start is battery_dead", base+"/diagnose", map[string]any{
			"problem_description": "My car won't start, makes clicking sound",
			"location":            "Westlands",
		}, http.StatusOK, map[string]any{
			"status":               "SUCCESS",
			"diagnosis.confidence": "HIGH",
			"diagnosis.issue":      "Battery Dead or Weak",
		}),
		getCase("Scenario B: battery in Westlands for a Toyota", base+"/estimate?service=battery_replacement&location=Westlands&car_make=Toyota", http.StatusOK, map[string]any{
			"estimate.labor":       []any{1200.0, 4800.0},
			"estimate.parts_range": []any{6500.0, 28000.0},
			"estimate.total_range": []any{7700.0, 32800.0},
		}),
		getCase("Scenario C: mobile callout to Westlands", base+"/estimate?service=mobile_callout&location=Westlands&time_of_day=normal", http.StatusOK, map[string]any{
			"estimate.boda_cost":   []any{150.0, 250.0},
			"estimate.total_range": []any{650.0, 750.0},
		}),
		getCase("Scenario D: mobile callout to Kahawa Sukari at peak", base+"/estimate?service=mobile_callout&location=Kahawa+Sukari&time_of_day=peak", http.StatusOK, map[string]any{
			"estimate.boda_cost":   []any{650.0, 780.0},
			"estimate.total_range": []any{1150.0, 1280.0},
		}),
		getCase("Scenario E: transmission needs diagnosis", base+"/estimate?service=transmission&location=Karen&car_make=BMW&time_of_day=peak", http.StatusOK, map[string]any{
			"estimate.type": "DIAGNOSIS_REQUIRED",
		}),
		getCase("Fallback: unmapped location", base+"/resolve?location=Atlantis", http.StatusOK, map[string]any{
			"road":      "unknown",
			"boda_cost": []any{300.0, 500.0},
		}),
		postCase("No match: DATA_MISSING", base+"/diagnose", map[string]any{
			"problem_description": "hello there",
		}, http.StatusOK, map[string]any{
			"status":     "DATA_MISSING",
			"confidence": "N/A",
		}),
		postCase("Validation: missing description -> 400", base+"/diagnose", map[string]any{}, http.StatusBadRequest, nil),
		getCase("Validation: unknown service -> 404", base+"/estimate?service=teleport", http.StatusNotFound, nil),

		{
			Name: "Load: concurrent diagnose",
			Run: func(ctx context.Context, r *Runner) Result {
				return perfLoad(ctx, r, base+"/diagnose", map[string]any{
					"problem_description": "car won't start, clicking sound, dashboard lights dim",
					"location":            "Kahawa Sukari",
					"timestamp":           "2025-11-05T08:15:00",
				})
			},
		},
	}
}

func getCase(name, url string, wantStatus int, want map[string]any) TestCase {
	return TestCase{Name: name, Run: func(ctx context.Context, r *Runner) Result {
		return r.check(ctx, http.MethodGet, url, nil, wantStatus, want)
	}}
}

func postCase(name, url string, body any, wantStatus int, want map[string]any) TestCase {
	return TestCase{Name: name, Run: func(ctx context.Context, r *Runner) Result {
		return r.check(ctx, http.MethodPost, url, body, wantStatus, want)
	}}
}

// check issues one request and compares dotted JSON paths in the response.
func (r *Runner) check(ctx context.Context, method, url string, body any, wantStatus int, want map[string]any) Result {
	start := time.Now()
	status, payload, err := r.do(ctx, method, url, body)
	latency := time.Since(start)
	if err != nil {
		return Result{Status: StatusFail, Note: err.Error()}
	}
	if status != wantStatus {
		return Result{Status: StatusFail, Latency: latency, Note: fmt.Sprintf("status=%d want %d", status, wantStatus)}
	}
	for path, v := range want {
		got := lookup(payload, path)
		if !reflect.DeepEqual(got, v) {
			return Result{Status: StatusFail, Latency: latency, Note: fmt.Sprintf("%s=%v want %v", path, got, v)}
		}
	}
	return Result{Status: StatusPass, Latency: latency}
}

func (r *Runner) do(ctx context.Context, method, url string, body any) (int, map[string]any, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return 0, nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, url, &buf)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := r.httpc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil && err != io.EOF {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, payload, nil
}

func lookup(m map[string]any, path string) any {
	var cur any = m
	for _, key := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = obj[key]
	}
	return cur
}

func perfLoad(ctx context.Context, r *Runner, url string, payload any) Result {
	b, _ := json.Marshal(payload)
	end := time.Now().Add(r.cfg.Duration)
	var count, errCount, limited atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < r.cfg.Concurrency; i++ {
		g.Go(func() error {
			for time.Now().Before(end) && gctx.Err() == nil {
				req, _ := http.NewRequestWithContext(gctx, http.MethodPost, url, bytes.NewReader(b))
				req.Header.Set("Content-Type", "application/json")
				resp, err := r.httpc.Do(req)
				if err != nil {
					errCount.Add(1)
					continue
				}
				_, _ = io.Copy(io.Discard, resp.Body)
				_ = resp.Body.Close()
				if resp.StatusCode == http.StatusTooManyRequests {
					limited.Add(1)
				}
				count.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	if count.Load() == 0 {
		return Result{Status: StatusFail, Note: "no requests completed"}
	}
	rps := float64(count.Load()) / r.cfg.Duration.Seconds()
	return Result{Status: StatusPass, Note: fmt.Sprintf("rps=%.1f errors=%d rate_limited=%d", rps, errCount.Load(), limited.Load())}
}
