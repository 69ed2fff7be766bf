package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter is a sliding-window request limiter keyed by client IP.
type RateLimiter struct {
	mu     sync.Mutex
	seen   map[string][]time.Time
	limit  int
	window time.Duration
	lastGC time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		seen:   make(map[string][]time.Time),
		limit:  limit,
		window: window,
		lastGC: time.Now(),
	}
}

func (r *RateLimiter) Allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	cutoff := now.Add(-r.window)
	kept := r.seen[key][:0]
	for _, ts := range r.seen[key] {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	if len(kept) >= r.limit {
		r.seen[key] = kept
		return false
	}
	r.seen[key] = append(kept, now)
	if now.Sub(r.lastGC) > r.window {
		r.gc(cutoff)
		r.lastGC = now
	}
	return true
}

// gc drops keys with no requests inside the window. Caller holds the lock.
func (r *RateLimiter) gc(cutoff time.Time) {
	for k, times := range r.seen {
		alive := false
		for _, ts := range times {
			if ts.After(cutoff) {
				alive = true
				break
			}
		}
		if !alive {
			delete(r.seen, k)
		}
	}
}

// RateLimit rejects clients that exceed the limiter's window with a 429.
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
