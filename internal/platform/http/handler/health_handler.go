// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	StatusUp       = "up"
	StatusDown     = "down"
	StatusDisabled = "disabled"

	pingTimeout = 2 * time.Second
)

// PingFunc checks one dependency. A nil PingFunc reports the dependency as disabled.
type PingFunc func(ctx context.Context) error

// RedisPing adapts a Redis client. A nil client yields a nil PingFunc.
func RedisPing(rdb *redis.Client) PingFunc {
	if rdb == nil {
		return nil
	}
	return func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	}
}

// GormPing adapts a gorm connection. A nil db yields a nil PingFunc.
func GormPing(db *gorm.DB) PingFunc {
	if db == nil {
		return nil
	}
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}

// HealthHandler serves /healthz.
type HealthHandler struct {
	redis    PingFunc
	database PingFunc
}

// NewHealthHandler creates a HealthHandler reporting on the given dependencies.
func NewHealthHandler(redisPing, dbPing PingFunc) *HealthHandler {
	return &HealthHandler{redis: redisPing, database: dbPing}
}

// Health reports the service status. A Redis outage only degrades the
// service (caching and portfolio fall back), while a database outage makes
// it unavailable.
func (h *HealthHandler) Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
		return
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	redisStatus := check(ctx, h.redis)
	dbStatus := check(ctx, h.database)

	status, code := "ok", http.StatusOK
	switch {
	case dbStatus == StatusDown:
		status, code = "unavailable", http.StatusServiceUnavailable
	case redisStatus == StatusDown:
		status = "degraded"
	}

	c.JSON(code, gin.H{"status": status, "redis": redisStatus, "database": dbStatus})
}

func check(ctx context.Context, ping PingFunc) string {
	if ping == nil {
		return StatusDisabled
	}
	if err := ping(ctx); err != nil {
		return StatusDown
	}
	return StatusUp
}
