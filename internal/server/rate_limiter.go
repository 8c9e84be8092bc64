package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// rateLimiter is a fixed-window counter keyed by client IP.
type rateLimiter struct {
	limit  int
	window time.Duration

	mu    sync.Mutex
	items map[string]*rateLimitEntry
}

type rateLimitEntry struct {
	windowStart time.Time
	count       int
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		limit:  limit,
		window: window,
		items:  make(map[string]*rateLimitEntry),
	}
}

func (r *rateLimiter) Allow(key string) bool {
	if key == "" {
		return false
	}
	now := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.items[key]
	if !ok || now.Sub(entry.windowStart) >= r.window {
		r.items[key] = &rateLimitEntry{windowStart: now, count: 1}
		return true
	}
	if entry.count >= r.limit {
		return false
	}
	entry.count++
	return true
}

func rateLimitMiddleware(limiter *rateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
