package bootstrap

import (
	"context"
	"log/slog"

	"court-booking/internal/handler/middleware"
	"court-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRateLimiter,
	),
)

// NewRateLimiter returns nil when REDIS_ADDR is unset; a nil limiter lets every request through.
func NewRateLimiter(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *middleware.RateLimiter {
	rc := cfg.RateLimit
	if rc.RedisAddr == "" {
		logger.Info("rate limiting disabled, REDIS_ADDR not set")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     rc.RedisAddr,
		Password: rc.RedisPassword,
		DB:       rc.RedisDB,
	})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rdb.Ping(ctx).Err(); err != nil {
				logger.Warn("redis unreachable at startup", "addr", rc.RedisAddr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	return middleware.NewRedisRateLimiter(rdb, rc.Limit, rc.Window, "rl:bookings", rc.FailOpen, logger)
}
