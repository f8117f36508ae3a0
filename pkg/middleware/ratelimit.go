package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"studio-booking/pkg/utils"

	"go.uber.org/zap"
)

type rateCounter struct {
	count   int
	resetAt time.Time
}

// RateLimiter is a best-effort fixed-window in-memory counter keyed by
// client IP and path. Single-instance only; a shared store would be needed
// behind a load balancer.
type RateLimiter struct {
	mu      sync.Mutex
	store   map[string]*rateCounter
	max     int
	window  time.Duration
	nowFunc func() time.Time
}

func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		store:   make(map[string]*rateCounter),
		max:     max,
		window:  window,
		nowFunc: time.Now,
	}
}

// Allow counts a hit for key and reports whether it is within the limit,
// together with the remaining budget and the window reset time.
func (rl *RateLimiter) Allow(key string) (allowed bool, remaining int, resetAt time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.nowFunc()
	entry, ok := rl.store[key]
	if !ok || entry.resetAt.Before(now) {
		entry = &rateCounter{count: 0, resetAt: now.Add(rl.window)}
		rl.store[key] = entry
	}
	entry.count++

	remaining = rl.max - entry.count
	if remaining < 0 {
		remaining = 0
	}

	return entry.count <= rl.max, remaining, entry.resetAt
}

func clientIP(r *http.Request) string {
	if xfwd := r.Header.Get("X-Forwarded-For"); xfwd != "" {
		parts := strings.Split(xfwd, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit middleware
func RateLimit(limiter *RateLimiter, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r) + ":" + r.URL.Path

			allowed, remaining, resetAt := limiter.Allow(key)

			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", limiter.max))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
			w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", resetAt.Unix()))

			if !allowed {
				retryAfter := int(time.Until(resetAt).Seconds())
				if retryAfter < 0 {
					retryAfter = 0
				}
				w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))

				logger.Warn("Rate limit exceeded",
					zap.String("ip", clientIP(r)),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseTooManyRequests(w, "Too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
