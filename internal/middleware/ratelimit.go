package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// RateLimiter is a fixed-window request counter shared through Redis
type RateLimiter struct {
	redis  *redis.Client
	limit  int
	window time.Duration
	prefix string
	log    logrus.FieldLogger
}

// NewRateLimiter allows limit requests per key in each window
func NewRateLimiter(client *redis.Client, limit int, window time.Duration, prefix string, log logrus.FieldLogger) *RateLimiter {
	if prefix == "" {
		prefix = "ratelimit"
	}
	return &RateLimiter{
		redis:  client,
		limit:  limit,
		window: window,
		prefix: prefix,
		log:    log,
	}
}

// Allow counts a request against key and reports whether it is within the limit,
// along with the time left in the current window.
func (rl *RateLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	redisKey := fmt.Sprintf("%s:%s", rl.prefix, key)

	pipe := rl.redis.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	ttl := pipe.TTL(ctx, redisKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return true, 0, fmt.Errorf("redis error: %w", err)
	}

	remaining := ttl.Val()
	// First hit of a window: the key has no expiry yet.
	if remaining < 0 {
		if err := rl.redis.Expire(ctx, redisKey, rl.window).Err(); err != nil {
			return true, 0, fmt.Errorf("redis error: %w", err)
		}
		remaining = rl.window
	}

	return incr.Val() <= int64(rl.limit), remaining, nil
}

// Middleware rejects clients over the limit with 429, keyed by client IP.
// Redis failures let the request through.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, retryAfter, err := rl.Allow(c.Request.Context(), "ip:"+c.ClientIP())
		if err != nil {
			rl.log.WithError(err).Warn("rate limiter unavailable, allowing request")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests, please try again later"})
			return
		}
		c.Next()
	}
}
