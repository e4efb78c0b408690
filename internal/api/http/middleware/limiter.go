package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	fiberredis "github.com/gofiber/storage/redis/v3"
	"github.com/redis/go-redis/v9"

	"github.com/astraclean/offerte_backend/config"
)

// NewLimiter returns a sliding-window limiter keyed by client IP. State is
// kept in Redis when rdb is set, in process memory otherwise.
func NewLimiter(cfg config.RateLimitConfig, rdb *redis.Client, limitReached fiber.Handler) fiber.Handler {
	limit := cfg.Max
	if limit <= 0 {
		limit = 5
	}
	expiration := time.Duration(cfg.ExpirationSeconds) * time.Second
	if expiration <= 0 {
		expiration = time.Minute
	}

	lcfg := limiter.Config{
		Max:               limit,
		Expiration:        expiration,
		LimiterMiddleware: limiter.SlidingWindow{},
		LimitReached:      limitReached,
	}
	if rdb != nil {
		lcfg.Storage = fiberredis.NewFromConnection(rdb)
	}
	return limiter.New(lcfg)
}
