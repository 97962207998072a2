package middleware

import (
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"github.com/hferdian/votely/models"
)

// RateLimiter throttles requests per client IP with a token bucket.
// Limiter state for an IP persists for the process lifetime; like the
// challenge table this grows with distinct callers, a known caveat of the
// in-memory design.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*rate.Limiter

	limit rate.Limit
	burst int
}

func NewRateLimiter(limit rate.Limit, burst int) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    burst,
	}
}

// Allow reports whether a request from ip may proceed now.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	limiter, ok := rl.visitors[ip]
	if !ok {
		limiter = rate.NewLimiter(rl.limit, rl.burst)
		rl.visitors[ip] = limiter
	}
	rl.mu.Unlock()

	return limiter.Allow()
}

// Limit wraps a handler, answering 429 when the caller exceeds the budget.
func (rl *RateLimiter) Limit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !rl.Allow(GetClientIP(r)) {
			ErrorResponse(w, http.StatusTooManyRequests, models.CodeRateLimited, "Too many attempts, slow down")
			return
		}
		next(w, r)
	}
}
