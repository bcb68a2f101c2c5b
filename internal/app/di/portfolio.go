package di

import (
	"github.com/redis/go-redis/v9"

	portfolioadapters "stock_dashboard/internal/feature/portfolio/adapters"
	"stock_dashboard/internal/feature/portfolio/usecase"
)

// NewPortfolioStore creates a portfolio Store implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to process memory.
func NewPortfolioStore(rdb *redis.Client) usecase.Store {
	if rdb != nil {
		return portfolioadapters.NewPortfolioRedis(rdb, "portfolio", portfolioadapters.DefaultTTL)
	}
	return portfolioadapters.NewPortfolioMemory()
}
