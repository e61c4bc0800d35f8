// README: Entry point; loads config and the catalog, wires engines, serves HTTP until signalled.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"sensei/internal/config"
	httptransport "sensei/internal/http"
	"sensei/internal/infra"
	"sensei/internal/modules/catalog"
	"sensei/internal/modules/diagnosis"
	"sensei/internal/modules/location"
	"sensei/internal/modules/pricing"
	"sensei/internal/modules/quota"
	"sensei/internal/service"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := infra.NewLogger(cfg.Log.Level, cfg.Log.Dev)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("Sensei API stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	cat, err := loadCatalog(ctx, cfg, logger)
	if err != nil {
		return err
	}

	roads := location.NewIndex(cat)
	for _, s := range roads.ShadowedEstates() {
		logger.Warn("Estate resolves to an earlier road",
			zap.String("estate", s.Estate),
			zap.String("declared", s.DeclaredRoad+" "+s.DeclaredBand),
			zap.String("resolved", s.ResolvedRoad+" "+s.ResolvedBand))
	}

	engine := pricing.NewService(cat, roads)
	sensei := service.NewSensei(cat, diagnosis.NewMatcher(cat), engine, logger)

	deps := httptransport.ServerDeps{
		Catalog:    cat,
		Sensei:     sensei,
		Pricing:    engine,
		Roads:      roads,
		Logger:     logger,
		CORSOrigin: cfg.HTTP.CORSOrigin,
		Version:    version,

		TrustedProxies: cfg.HTTP.TrustedProxies,
	}
	if cfg.QuotaEnabled() {
		redisClient, err := infra.NewRedis(ctx, infra.RedisOptions{
			Addr:       cfg.Redis.Addr,
			Password:   cfg.Redis.Password,
			DB:         cfg.Redis.DB,
			MaxElapsed: cfg.Redis.ConnectTimeout,
		}, logger)
		if err != nil {
			return err
		}
		defer func() { _ = redisClient.Close() }()
		deps.Quota = quota.NewService(quota.NewStore(redisClient), cfg.Quota.Limit, cfg.Quota.Window)
	} else {
		logger.Info("Request quota disabled; SENSEI_REDIS_ADDR not set")
	}

	if !cfg.Log.Dev {
		gin.SetMode(gin.ReleaseMode)
	}
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: httptransport.NewServer(deps).Routes()}

	logger.Info("Sensei API starting",
		zap.String("addr", cfg.HTTP.Addr),
		zap.String("version", version),
		zap.String("catalog_source", string(cfg.Catalog.Source)),
		zap.Int("templates", len(cat.Templates())),
		zap.Int("roads", len(cat.Roads())),
		zap.Int("coverage_km", cat.Coverage().MaxDistanceKm),
		zap.Bool("quota", cfg.QuotaEnabled()))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		logger.Info("Shutting down HTTP server")
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// loadCatalog builds the catalog from the configured source. Any integrity
// problem stops startup.
func loadCatalog(ctx context.Context, cfg config.Config, logger *zap.Logger) (*catalog.Catalog, error) {
	switch cfg.Catalog.Source {
	case config.CatalogFile:
		return catalog.LoadFile(cfg.Catalog.File)
	case config.CatalogPostgres:
		pool, err := infra.NewDB(ctx, cfg.DB.DSN, cfg.DB.ConnectTimeout, logger)
		if err != nil {
			return nil, err
		}
		defer pool.Close()
		if err := infra.Migrate(ctx, pool, logger); err != nil {
			return nil, err
		}
		return catalog.NewStore(pool).Load(ctx, cfg.Catalog.Snapshot)
	}
	return catalog.Default(), nil
}
