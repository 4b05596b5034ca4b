package middleware

import (
	"time"

	"booking-assistant/pkg/log"
)

// HTTPMetrics records served requests. Optional.
type HTTPMetrics interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

// Config configures the middleware set.
type Config struct {
	AllowedOrigins   []string // empty allows any origin
	RateLimitEnabled bool
	RequestsPerMin   int
}

type Middleware struct {
	l       log.Logger
	cfg     Config
	metrics HTTPMetrics
	limiter *rateLimiter
}

// New builds the middleware set. metrics may be nil.
func New(l log.Logger, cfg Config, metrics HTTPMetrics) Middleware {
	mw := Middleware{
		l:       l,
		cfg:     cfg,
		metrics: metrics,
	}
	if cfg.RateLimitEnabled && cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
