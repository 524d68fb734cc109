package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RateLimiter enforces a fixed-window request ceiling per client key. It is
// constructed once at startup and injected into the routes that need it.
// Entries expire with their window; stale keys are swept on the fly.
type RateLimiter struct {
	window time.Duration
	max    int

	mu        sync.Mutex
	windows   map[string]*clientWindow
	lastSweep time.Time
}

type clientWindow struct {
	start time.Time
	count int
}

// NewRateLimiter creates a limiter allowing max requests per window per client
func NewRateLimiter(window time.Duration, max int) *RateLimiter {
	return &RateLimiter{
		window:    window,
		max:       max,
		windows:   make(map[string]*clientWindow),
		lastSweep: time.Now(),
	}
}

// Allow records a request for the key and reports whether it is within the
// window's ceiling
func (rl *RateLimiter) Allow(key string) bool {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.sweep(now)

	w := rl.windows[key]
	if w == nil || now.Sub(w.start) >= rl.window {
		rl.windows[key] = &clientWindow{start: now, count: 1}
		return true
	}

	if w.count >= rl.max {
		return false
	}
	w.count++
	return true
}

// sweep drops windows older than two intervals. Called with the lock held.
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.window {
		return
	}
	cutoff := now.Add(-2 * rl.window)
	for key, w := range rl.windows {
		if w.start.Before(cutoff) {
			delete(rl.windows, key)
		}
	}
	rl.lastSweep = now
}

// Middleware keys requests by the authenticated user when available,
// falling back to the client IP for public routes
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if userID, ok := c.Get("userID"); ok {
			if id, ok := userID.(primitive.ObjectID); ok {
				key = id.Hex()
			}
		}

		if !rl.Allow(key) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Please try again later."})
			c.Abort()
			return
		}
		c.Next()
	}
}
