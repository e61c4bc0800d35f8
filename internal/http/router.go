// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sensei/internal/http/handlers"
	"sensei/internal/http/middleware"
)

// Routes builds the gin engine. Health stays outside the quota. Forwarding
// headers are honored only from trusted proxies, since the quota keys on the
// client IP.
func (s *Server) Routes() http.Handler {
	r := gin.New()
	if err := r.SetTrustedProxies(s.proxies); err != nil {
		s.logger.Warn("Invalid trusted proxies, trusting none", zap.Strings("proxies", s.proxies), zap.Error(err))
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(middleware.Logging(s.logger), middleware.Recovery(s.logger))
	if s.corsOrigin != "" {
		r.Use(middleware.CORS(s.corsOrigin))
	}

	api := r.Group("/api/sensei")

	healthHandler := handlers.NewHealthHandler(s.catalog, s.version)
	api.GET("/health", healthHandler.Health)

	if s.quota != nil {
		api.Use(middleware.Quota(s.quota, s.logger))
	}

	senseiHandler := handlers.NewSenseiHandler(s.sensei)
	api.POST("/diagnose", senseiHandler.Diagnose)

	pricingHandler := handlers.NewPricingHandler(s.pricing)
	api.GET("/estimate", pricingHandler.Estimate)

	locationHandler := handlers.NewLocationHandler(s.roads)
	api.GET("/resolve", locationHandler.Resolve)

	return r
}
