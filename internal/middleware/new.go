package middleware

import (
	"time"

	"breeze/pkg/log"
	"breeze/pkg/ratelimit"
)

const (
	DefaultCookieName = "sessionId"
	DefaultCookieTTL  = 24 * time.Hour
)

// Config is the dependency bag passed to New().
type Config struct {
	CookieName string
	CookieTTL  time.Duration
	// Secure marks the session cookie Secure; set in production.
	Secure bool
	// Limiter is optional; nil disables rate limiting.
	Limiter *ratelimit.Limiter
}

type Middleware struct {
	l          log.Logger
	cookieName string
	cookieTTL  time.Duration
	secure     bool
	limiter    *ratelimit.Limiter
}

func New(l log.Logger, cfg Config) Middleware {
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultCookieName
	}
	if cfg.CookieTTL <= 0 {
		cfg.CookieTTL = DefaultCookieTTL
	}
	return Middleware{
		l:          l,
		cookieName: cfg.CookieName,
		cookieTTL:  cfg.CookieTTL,
		secure:     cfg.Secure,
		limiter:    cfg.Limiter,
	}
}
