// Package ratelimit throttles attendance submissions per client. The
// window lives in Redis so limits hold across multiple API replicas.
package ratelimit

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

type Limiter struct {
	client *redis.Client
	prefix string
	limit  int
	window time.Duration
}

// NewLimiter allows limit requests per key per window.
func NewLimiter(client *redis.Client, prefix string, limit int, window time.Duration) *Limiter {
	if prefix == "" {
		prefix = "absensi:ratelimit"
	}
	return &Limiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
	}
}

// Allow increments the fixed-window counter for key and reports whether
// the request is still inside the limit. Redis being unreachable fails
// open: attendance must not be blocked by the limiter's own outage.
func (l *Limiter) Allow(r *http.Request, key string) bool {
	redisKey := fmt.Sprintf("%s:%s:%d", l.prefix, key, time.Now().Unix()/int64(l.window.Seconds()))

	count, err := l.client.Incr(r.Context(), redisKey).Result()
	if err != nil {
		return true
	}
	if count == 1 {
		l.client.Expire(r.Context(), redisKey, l.window)
	}
	return count <= int64(l.limit)
}

// Middleware enforces per-IP limits on the wrapped handlers.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil || key == "" {
			key = r.RemoteAddr
		}
		if !l.Allow(r, key) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"success":false,"error":{"code":"RATE_LIMITED","message":"Too many requests, try again shortly"}}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}
