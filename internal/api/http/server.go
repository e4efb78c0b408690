package http

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/logger"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/astraclean/offerte_backend/config"
	"github.com/astraclean/offerte_backend/internal/api/http/handler"
	"github.com/astraclean/offerte_backend/internal/api/http/middleware"
	"github.com/astraclean/offerte_backend/internal/api/http/router"
	"github.com/astraclean/offerte_backend/pkg/constants"
	"github.com/astraclean/offerte_backend/pkg/observability"
)

// Module provides the HTTP Server to the fx graph.
var Module = fx.Module("http", fx.Provide(NewServer))

type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Cfg       *config.Config
	Redis     *redis.Client `optional:"true"`
	Router    *router.Router
	OTel      *observability.Provider `optional:"true"`
}

func NewServer(p Params) *fiber.App {
	app := New(p.Cfg, p.Redis, p.Router, p.OTel)

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			addr := fmt.Sprintf(":%d", p.Cfg.Server.Port)
			go func() {
				if err := app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
					slog.Error("HTTP server error", "error", err)
				}
			}()
			slog.Info("HTTP server listening", "addr", addr)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})

	return app
}

// New builds the Fiber app with global middleware and every route. otel may
// be nil.
func New(cfg *config.Config, rdb *redis.Client, r *router.Router, otel *observability.Provider) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:   constants.AppName,
		BodyLimit: 1 << 20,
	})

	if otel != nil {
		app.Use(otel.FiberMiddleware(observability.MiddlewareConfig{
			Skip:        router.SystemPaths(cfg),
			QuoteRoutes: router.QuotePaths,
		}))
	}

	configureGlobalMiddleware(app, cfg, rdb)

	r.Register(app)

	return app
}

func configureGlobalMiddleware(app *fiber.App, cfg *config.Config, rdb *redis.Client) {
	app.Use(middleware.RequestID())
	app.Use(recoverer.New())

	if cfg.Server.CORS.Enabled {
		app.Use(cors.New(cors.Config{
			AllowOrigins: cfg.Server.CORS.AllowOrigins,
			AllowMethods: []string{fiber.MethodPost, fiber.MethodOptions},
		}))
	}

	if cfg.IsProduction() {
		app.Use(helmet.New())
		app.Use(middleware.NewLimiter(cfg.Server.RateLimit, rdb, handler.TooManyRequests))
	}

	app.Use(logger.New(logger.Config{
		Format: "${ip} - [${time}] [req_id=${locals:request_id}] ${method} ${url} ${status}\n",
	}))
}
