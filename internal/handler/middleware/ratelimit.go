package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"court-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

var (
	errRateLimited        = errors.New("rate limit exceeded")
	errLimiterUnavailable = errors.New("rate limiter unavailable")
)

// Counter increments the hit count for key within a fixed window.
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

type RateLimiter struct {
	counter  Counter
	limit    int
	window   time.Duration
	prefix   string
	failOpen bool
	logger   *slog.Logger
}

func NewRateLimiter(counter Counter, limit int, window time.Duration, prefix string, failOpen bool, logger *slog.Logger) *RateLimiter {
	if limit <= 0 {
		limit = 60
	}
	if window <= 0 {
		window = time.Minute
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "rl"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RateLimiter{counter: counter, limit: limit, window: window, prefix: prefix, failOpen: failOpen, logger: logger}
}

func NewRedisRateLimiter(rdb *redis.Client, limit int, window time.Duration, prefix string, failOpen bool, logger *slog.Logger) *RateLimiter {
	return NewRateLimiter(&redisCounter{rdb: rdb}, limit, window, prefix, failOpen, logger)
}

// Limit is a no-op on a nil receiver so routes can be wired without Redis.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || rl.counter == nil {
			c.Next()
			return
		}

		key := rl.prefix + ":" + rateLimitKey(c)
		count, err := rl.counter.Incr(c.Request.Context(), key, rl.window)
		if err != nil {
			rl.logger.Warn("redis rate limiter error", "error", err.Error())
			if rl.failOpen {
				c.Next()
				return
			}
			httperr.AbortWithError(c, http.StatusServiceUnavailable, errLimiterUnavailable, "Service temporarily unavailable", nil)
			return
		}
		if count > int64(rl.limit) {
			c.Header("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many booking requests, please try again later", nil)
			return
		}
		c.Next()
	}
}

// members are limited individually; anonymous callers share their client IP
func rateLimitKey(c *gin.Context) string {
	if id, ok := GetUserID(c); ok {
		return "user:" + id.String()
	}
	return "ip:" + c.ClientIP()
}

type redisCounter struct {
	rdb *redis.Client
}

var redisFixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

func (r *redisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	ms := window.Milliseconds()
	if ms <= 0 {
		ms = time.Minute.Milliseconds()
	}
	res, err := redisFixedWindowScript.Run(ctx, r.rdb, []string{key}, ms).Result()
	if err != nil {
		return 0, err
	}
	switch v := res.(type) {
	case int64:
		return v, nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, err
		}
		return n, nil
	default:
		return 0, fmt.Errorf("unexpected redis script result type %T", res)
	}
}
