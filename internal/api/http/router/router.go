package router

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/astraclean/offerte_backend/config"
	"github.com/astraclean/offerte_backend/internal/api/http/handler"
	"github.com/astraclean/offerte_backend/internal/service/quote"
	"github.com/astraclean/offerte_backend/pkg/observability"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg      *config.Config
	Redis    *redis.Client           `optional:"true"`
	OTel     *observability.Provider `optional:"true"`
	QuoteSvc quote.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	quoteH := handler.NewQuoteHandler(r.p.QuoteSvc)
	r.registerQuoteRoutes(app, quoteH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return r.redisReady(c.Context()) },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.OTel != nil && r.p.Cfg.Observability.Metrics.Enabled {
		app.Get(metricsPath(r.p.Cfg), adaptor.HTTPHandler(r.p.OTel.MetricsHandler()))
	}
}

// SystemPaths lists the health check and metrics endpoints, which are served
// outside the request instrumentation.
func SystemPaths(cfg *config.Config) []string {
	return []string{
		healthcheck.LivenessEndpoint,
		healthcheck.ReadinessEndpoint,
		healthcheck.StartupEndpoint,
		metricsPath(cfg),
	}
}

func metricsPath(cfg *config.Config) string {
	if cfg.Observability.Metrics.Path == "" {
		return "/metrics"
	}
	return cfg.Observability.Metrics.Path
}

// redisReady is true when Redis is not configured or answers a ping.
func (r *Router) redisReady(ctx context.Context) bool {
	if r.p.Redis == nil {
		return true
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return r.p.Redis.Ping(ctx).Err() == nil
}
