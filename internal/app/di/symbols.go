// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	symboladapters "stock_dashboard/internal/feature/symbollist/adapters"
	"stock_dashboard/internal/platform/cache"
)

// NewSymbolRepository migrates the symbols table, wraps the gorm repository
// with the Redis cache and seeds the mock universe. A nil rdb disables caching.
func NewSymbolRepository(ctx context.Context, db *gorm.DB, rdb *redis.Client, ttl time.Duration) (*cache.CachingSymbolRepository, error) {
	inner := symboladapters.NewSymbolRepository(db)
	if err := inner.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("migrate symbols: %w", err)
	}

	repo := cache.NewCachingSymbolRepository(rdb, ttl, inner, "symbols")
	if err := repo.Seed(ctx, symboladapters.MockUniverse()); err != nil {
		return nil, fmt.Errorf("seed symbols: %w", err)
	}
	return repo, nil
}
