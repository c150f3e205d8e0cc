package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	DefaultRequests = 100
	DefaultWindow   = 15 * time.Minute
	DefaultMaxKeys  = 10000
)

// Limiter is a per-key token bucket with idle keys evicted after one window.
// A key may spend Requests tokens at once; tokens refill evenly over Window.
type Limiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// New creates a Limiter allowing requests per window for each key.
// Non-positive arguments fall back to the defaults.
func New(requests int, window time.Duration, maxKeys int) *Limiter {
	if requests <= 0 {
		requests = DefaultRequests
	}
	if window <= 0 {
		window = DefaultWindow
	}
	if maxKeys <= 0 {
		maxKeys = DefaultMaxKeys
	}
	return &Limiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxKeys, nil, window),
		rate:     rate.Limit(float64(requests) / window.Seconds()),
		burst:    requests,
	}
}

// Allow consumes one token for key. When the key is over its limit it
// returns false and how long the caller should wait before retrying.
func (l *Limiter) Allow(key string) (bool, time.Duration) {
	l.mu.Lock()
	limiter, ok := l.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(l.rate, l.burst)
		l.limiters.Add(key, limiter)
	}
	l.mu.Unlock()

	r := limiter.Reserve()
	if !r.OK() {
		return false, 0
	}
	if delay := r.Delay(); delay > 0 {
		r.Cancel()
		return false, delay
	}
	return true, 0
}

// ClientIP extracts the client address, honouring proxy headers.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
