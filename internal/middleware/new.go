package middleware

import (
	"time"

	"todo-list/pkg/log"
)

// Config is the dependency bag passed to New().
type Config struct {
	SessionCookieName   string
	SessionSecureCookie bool
	SessionTTL          time.Duration

	RateLimitEnabled        bool
	RateLimitRequestsPerMin int
	RateLimitMaxClients     int
}

type Middleware struct {
	l           log.Logger
	cfg         Config
	rateLimiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:   l,
		cfg: cfg,
	}
	if cfg.RateLimitEnabled {
		mw.rateLimiter = newRateLimiter(cfg.RateLimitRequestsPerMin, cfg.RateLimitMaxClients)
	}
	return mw
}
