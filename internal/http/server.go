// README: API gateway; wires middleware and delegates to module services.
package http

import (
	"go.uber.org/zap"

	"sensei/internal/http/middleware"
	"sensei/internal/modules/catalog"
	"sensei/internal/modules/location"
	"sensei/internal/modules/pricing"
	"sensei/internal/service"
)

// ServerDeps lists what the HTTP layer needs. Quota is optional; without it
// requests are not counted.
type ServerDeps struct {
	Catalog    *catalog.Catalog
	Sensei     *service.Sensei
	Pricing    *pricing.Service
	Roads      *location.Index
	Quota      middleware.Limiter
	Logger     *zap.Logger
	CORSOrigin string
	Version    string
	// TrustedProxies may set X-Forwarded-For. Empty trusts none.
	TrustedProxies []string
}

type Server struct {
	catalog    *catalog.Catalog
	sensei     *service.Sensei
	pricing    *pricing.Service
	roads      *location.Index
	quota      middleware.Limiter
	logger     *zap.Logger
	corsOrigin string
	version    string
	proxies    []string
}

func NewServer(deps ServerDeps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		catalog:    deps.Catalog,
		sensei:     deps.Sensei,
		pricing:    deps.Pricing,
		roads:      deps.Roads,
		quota:      deps.Quota,
		logger:     logger,
		corsOrigin: deps.CORSOrigin,
		version:    deps.Version,
		proxies:    deps.TrustedProxies,
	}
}
