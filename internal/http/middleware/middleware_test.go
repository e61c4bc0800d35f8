// README: Middleware tests for request IDs, panic recovery, CORS and quota enforcement.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"sensei/internal/modules/quota"
)

type stubLimiter struct {
	decision quota.Decision
	err      error
	calls    int
}

func (s *stubLimiter) Allow(_ context.Context, _ string) (quota.Decision, error) {
	s.calls++
	return s.decision, s.err
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, RequestID(c)) })
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func serve(r *gin.Engine, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[http.CanonicalHeaderKey(k)] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogging_AssignsRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := newEngine(Logging(zap.New(core)))

	w := serve(r, http.MethodGet, "/ok", nil)
	require.Equal(t, http.StatusOK, w.Code)
	id := w.Header().Get(RequestIDHeader)
	assert.Len(t, id, 36)
	assert.Equal(t, id, w.Body.String())

	entries := logs.FilterMessage("Request served").All()
	require.Len(t, entries, 1)
	assert.Equal(t, id, entries[0].ContextMap()["request_id"])
	assert.Equal(t, int64(http.StatusOK), entries[0].ContextMap()["status"])
}

func TestLogging_KeepsCallerRequestID(t *testing.T) {
	r := newEngine(Logging(zap.NewNop()))
	w := serve(r, http.MethodGet, "/ok", http.Header{RequestIDHeader: {"abc-123"}})
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", w.Body.String())
}

func TestRecovery(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	r := newEngine(Recovery(zap.New(core)))

	w := serve(r, http.MethodGet, "/panic", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
	assert.Equal(t, 1, logs.FilterMessage("Panic while serving request").Len())
}

func TestCORS(t *testing.T) {
	r := newEngine(CORS("https://carspital.example"))

	w := serve(r, http.MethodOptions, "/ok", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://carspital.example", w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(r, http.MethodGet, "/ok", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://carspital.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestQuota(t *testing.T) {
	tests := []struct {
		name        string
		limiter     *stubLimiter
		wantStatus  int
		wantRemain  string
		wantRetry   string
		wantWarning bool
	}{
		{
			name:       "within limit",
			limiter:    &stubLimiter{decision: quota.Decision{Count: 3, Limit: 60, Remaining: 57}},
			wantStatus: http.StatusOK,
			wantRemain: "57",
		},
		{
			name:       "over limit",
			limiter:    &stubLimiter{decision: quota.Decision{Count: 61, Limit: 60, ResetIn: 1500 * time.Millisecond}, err: quota.ErrQuotaExceeded},
			wantStatus: http.StatusTooManyRequests,
			wantRemain: "0",
			wantRetry:  "2",
		},
		{
			name:        "counter down fails open",
			limiter:     &stubLimiter{err: errors.New("dial tcp: connection refused")},
			wantStatus:  http.StatusOK,
			wantWarning: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)
			r := newEngine(Quota(tt.limiter, zap.New(core)))

			w := serve(r, http.MethodGet, "/ok", nil)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantRemain, w.Header().Get("X-RateLimit-Remaining"))
			assert.Equal(t, tt.wantRetry, w.Header().Get("Retry-After"))
			assert.Equal(t, tt.wantWarning, logs.Len() > 0)
			assert.Equal(t, 1, tt.limiter.calls)
		})
	}
}
