// README: Per-client request quota. Counter failures let the request through.
package middleware

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sensei/internal/modules/quota"
)

// Limiter is satisfied by *quota.Service.
type Limiter interface {
	Allow(ctx context.Context, clientID string) (quota.Decision, error)
}

func Quota(limiter Limiter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		switch {
		case errors.Is(err, quota.ErrQuotaExceeded):
			setQuotaHeaders(c, d)
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(d.ResetIn.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
			return
		case err != nil:
			logger.Warn("Quota check failed, allowing request",
				zap.String("request_id", RequestID(c)),
				zap.String("client_ip", c.ClientIP()),
				zap.Error(err))
		default:
			setQuotaHeaders(c, d)
		}
		c.Next()
	}
}

func setQuotaHeaders(c *gin.Context, d quota.Decision) {
	c.Header("X-RateLimit-Limit", strconv.FormatInt(d.Limit, 10))
	c.Header("X-RateLimit-Remaining", strconv.FormatInt(d.Remaining, 10))
}
