package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestLimiter_Allow(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	l := NewLimiter(Config{RPS: 1, Burst: 2})
	l.now = fixedClock(start)

	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"), "burst exhausted")

	// Buckets are per key
	assert.True(t, l.Allow("b"))

	// One token refills after a second
	l.now = fixedClock(start.Add(time.Second))
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
}

func TestLimiter_Disabled(t *testing.T) {
	t.Parallel()

	l := NewLimiter(Config{RPS: 0, Burst: 1})
	for range 100 {
		assert.True(t, l.Allow("a"))
	}
}

func TestLimiter_SweepsIdleVisitors(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	l := NewLimiter(Config{RPS: 1, Burst: 1})
	l.lastSweep = start
	l.now = fixedClock(start)
	l.Allow("idle")

	l.now = fixedClock(start.Add(idleTTL + time.Second))
	l.Allow("active")

	_, idle := l.visitors["idle"]
	_, active := l.visitors["active"]
	assert.False(t, idle)
	assert.True(t, active)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	l := NewLimiter(Config{RPS: 0.001, Burst: 1})
	r := gin.New()
	r.Use(l.Middleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"rate limit exceeded"}`, w.Body.String())
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name          string
		rps           string
		burst         string
		expectedRPS   float64
		expectedBurst int
	}{
		{"defaults", "", "", DefaultRPS, DefaultBurst},
		{"custom", "5.5", "10", 5.5, 10},
		{"invalid values fall back", "fast", "-3", DefaultRPS, DefaultBurst},
		{"zero rps disables", "0", "", 0, DefaultBurst},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("RATE_LIMIT_RPS", tt.rps)
			t.Setenv("RATE_LIMIT_BURST", tt.burst)

			cfg := LoadConfig()
			assert.Equal(t, tt.expectedRPS, cfg.RPS)
			assert.Equal(t, tt.expectedBurst, cfg.Burst)
		})
	}
}
