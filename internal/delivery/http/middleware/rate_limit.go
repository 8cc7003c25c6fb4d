package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Pings-Lab/pings-lab.github.io/internal/delivery/http/response"
	"github.com/Pings-Lab/pings-lab.github.io/internal/domain"
	"github.com/Pings-Lab/pings-lab.github.io/pkg/logger"
	"github.com/Pings-Lab/pings-lab.github.io/pkg/redis"
	"github.com/Pings-Lab/pings-lab.github.io/pkg/security"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: IP-based)
	KeyFunc func(*gin.Context) string
	// Key prefix for Redis (default: "rl:ip:")
	KeyPrefix string
	// Whether to fail closed (reject) when Redis errors
	FailClosed bool
	// Message shown to rate limited visitors
	Message string
	// Reject writes the 429 response; the JSON envelope when nil
	Reject func(c *gin.Context, message string)
}

// rateLimitEntry tracks request count for a key (in-memory fallback)
type rateLimitEntry struct {
	count   int
	resetAt time.Time
	mu      sync.Mutex
}

// windowFunc counts one hit; redis.IncrWindow in production.
type windowFunc func(ctx context.Context, key string, window time.Duration) (int, time.Time, error)

// limiter keeps its own fallback store so two middlewares never share counters.
type limiter struct {
	config RateLimitConfig
	store  sync.Map
	remote windowFunc
	now    func() time.Time

	sweepMu   sync.Mutex
	nextSweep time.Time
}

// GlobalRateLimitConfig applies to every route.
func GlobalRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:ip:",
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
		Message: "Rate limit exceeded. Please try again later.",
	}
}

// SubmitRateLimitConfig guards the form submission routes, which each cost an
// outbound request to the form endpoint.
func SubmitRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:submit:",
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
		Message: "Too many submissions. Please wait a minute and try again.",
	}
}

// APISubmitRateLimitConfig is SubmitRateLimitConfig for the JSON API, counted
// under its own prefix so Redis and the in-memory fallback agree.
func APISubmitRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	config := SubmitRateLimitConfig(limit, window)
	config.KeyPrefix = "rl:api:submit:"
	return config
}

// RateLimitMiddleware creates a rate limiting middleware with the given config.
// Uses Redis when available, falls back to in-memory when not.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	l := &limiter{config: config, remote: redis.IncrWindow, now: time.Now}
	return l.handle
}

func (l *limiter) handle(c *gin.Context) {
	// Preflights are never counted.
	if c.Request.Method == http.MethodOptions {
		c.Next()
		return
	}

	fullKey := l.config.KeyPrefix + l.config.KeyFunc(c)
	now := l.now()

	count, resetAt, err := l.remote(c.Request.Context(), fullKey, l.config.Window)
	if err != nil {
		if !errors.Is(err, redis.ErrNotConfigured) {
			if l.config.FailClosed {
				logger.Log.Error("Rate limit store unavailable", "error", err, "key", fullKey)
				response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.", nil)
				c.Abort()
				return
			}
			logger.Log.Warn("Rate limit falling back to memory", "error", err)
		}
		count, resetAt = l.inMemory(fullKey, now)
	}

	c.Header("X-RateLimit-Limit", strconv.Itoa(l.config.Limit))
	c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

	if count > l.config.Limit {
		retryAfter := int(resetAt.Sub(now).Seconds())
		if retryAfter < 1 {
			retryAfter = 1
		}
		c.Header("X-RateLimit-Remaining", "0")
		c.Header("Retry-After", strconv.Itoa(retryAfter))

		security.DefaultLogger().LogRateLimitTriggered(
			c.Request.Context(),
			c.ClientIP(),
			c.GetHeader("User-Agent"),
			c.GetString(string(domain.KeyRequestID)),
			c.FullPath(),
		)

		if l.config.Reject != nil {
			l.config.Reject(c, l.config.Message)
		} else {
			response.Error(c, http.StatusTooManyRequests, l.config.Message, nil)
		}
		c.Abort()
		return
	}

	remaining := l.config.Limit - count
	if remaining < 0 {
		remaining = 0
	}
	c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

	c.Next()
}

// inMemory checks rate limit using the in-memory store (fallback)
func (l *limiter) inMemory(key string, now time.Time) (int, time.Time) {
	l.maybeSweep(now)

	entryI, _ := l.store.LoadOrStore(key, &rateLimitEntry{resetAt: now.Add(l.config.Window)})
	entry := entryI.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(l.config.Window)
	}
	entry.count++

	return entry.count, entry.resetAt
}

// maybeSweep drops expired fallback entries at most once per window.
func (l *limiter) maybeSweep(now time.Time) {
	l.sweepMu.Lock()
	if now.Before(l.nextSweep) {
		l.sweepMu.Unlock()
		return
	}
	l.nextSweep = now.Add(l.config.Window)
	l.sweepMu.Unlock()

	l.sweep(now)
}

// sweep deletes every entry whose window has passed.
func (l *limiter) sweep(now time.Time) {
	l.store.Range(func(key, value interface{}) bool {
		entry := value.(*rateLimitEntry)
		entry.mu.Lock()
		if now.After(entry.resetAt) {
			l.store.Delete(key)
		}
		entry.mu.Unlock()
		return true
	})
}
