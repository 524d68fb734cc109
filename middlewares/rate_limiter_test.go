package middlewares

import (
	"testing"
	"time"
)

func TestRateLimiterAllowsWithinCeiling(t *testing.T) {
	limiter := NewRateLimiter(time.Minute, 3)

	for i := 0; i < 3; i++ {
		if !limiter.Allow("client-a") {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
	}
	if limiter.Allow("client-a") {
		t.Error("Expected request over the ceiling to be rejected")
	}
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	limiter := NewRateLimiter(time.Minute, 1)

	if !limiter.Allow("client-a") {
		t.Error("Expected first request from client-a to be allowed")
	}
	if !limiter.Allow("client-b") {
		t.Error("Expected first request from client-b to be allowed")
	}
	if limiter.Allow("client-a") {
		t.Error("Expected second request from client-a to be rejected")
	}
}

func TestRateLimiterWindowResets(t *testing.T) {
	limiter := NewRateLimiter(50*time.Millisecond, 1)

	if !limiter.Allow("client-a") {
		t.Error("Expected first request to be allowed")
	}
	if limiter.Allow("client-a") {
		t.Error("Expected second request within the window to be rejected")
	}

	time.Sleep(60 * time.Millisecond)

	if !limiter.Allow("client-a") {
		t.Error("Expected a fresh window after expiry")
	}
}

func TestRateLimiterSweepDropsStaleKeys(t *testing.T) {
	limiter := NewRateLimiter(20*time.Millisecond, 5)

	limiter.Allow("client-a")
	limiter.Allow("client-b")

	time.Sleep(50 * time.Millisecond)
	limiter.Allow("client-c")

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	if _, ok := limiter.windows["client-a"]; ok {
		t.Error("Expected stale client-a window to be swept")
	}
	if _, ok := limiter.windows["client-c"]; !ok {
		t.Error("Expected active client-c window to remain")
	}
}
