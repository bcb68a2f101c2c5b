// Package ratelimit throttles HTTP requests per client with token buckets.
package ratelimit

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"stock_dashboard/internal/api"
)

const (
	DefaultRPS   = 20.0
	DefaultBurst = 40

	idleTTL = 10 * time.Minute
)

// Config holds the token bucket settings. A non-positive RPS disables limiting.
type Config struct {
	RPS   float64
	Burst int
}

// LoadConfig reads RATE_LIMIT_RPS and RATE_LIMIT_BURST.
func LoadConfig() Config {
	cfg := Config{RPS: DefaultRPS, Burst: DefaultBurst}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RPS = f
		} else {
			slog.Warn("invalid RATE_LIMIT_RPS, using default", "value", v)
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Burst = n
		} else {
			slog.Warn("invalid RATE_LIMIT_BURST, using default", "value", v)
		}
	}
	return cfg
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter keeps one token bucket per key.
type Limiter struct {
	mu        sync.Mutex
	cfg       Config
	visitors  map[string]*visitor
	lastSweep time.Time
	now       func() time.Time
}

// NewLimiter creates a Limiter with the given configuration.
func NewLimiter(cfg Config) *Limiter {
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	return &Limiter{
		cfg:       cfg,
		visitors:  make(map[string]*visitor),
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// Allow reports whether a request for key may proceed now.
func (l *Limiter) Allow(key string) bool {
	if l.cfg.RPS <= 0 {
		return true
	}

	l.mu.Lock()
	now := l.now()
	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rate.Limit(l.cfg.RPS), l.cfg.Burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	l.sweep(now)
	l.mu.Unlock()

	return v.limiter.AllowN(now, 1)
}

// sweep drops idle buckets. Caller holds mu.
func (l *Limiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < idleTTL {
		return
	}
	for k, v := range l.visitors {
		if now.Sub(v.lastSeen) >= idleTTL {
			delete(l.visitors, k)
		}
	}
	l.lastSweep = now
}

// Middleware rejects requests over the limit with 429. Requests are keyed
// by client IP.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, api.ErrorResponse{Error: "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
