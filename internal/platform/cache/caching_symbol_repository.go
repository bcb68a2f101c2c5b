// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"stock_dashboard/internal/feature/symbollist/domain/entity"
	"stock_dashboard/internal/feature/symbollist/usecase"
)

// DefaultRefreshHour is the UTC hour at which cached reference data expires
// when no fixed TTL is configured.
const DefaultRefreshHour = 8

// SymbolStore is a SymbolRepository that can also be seeded.
type SymbolStore interface {
	usecase.SymbolRepository
	Seed(ctx context.Context, symbols []entity.Symbol) error
}

// CachingSymbolRepository decorates a SymbolStore with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository.
type CachingSymbolRepository struct {
	inner     SymbolStore
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
	now       func() time.Time
}

var _ usecase.SymbolRepository = (*CachingSymbolRepository)(nil)

// NewCachingSymbolRepository decorates a SymbolStore with Redis caching.
// If ttl is 0, entries expire at the next DefaultRefreshHour (UTC).
// If namespace is empty, it uses "symbols". A nil rdb disables caching.
func NewCachingSymbolRepository(rdb *redis.Client, ttl time.Duration, inner SymbolStore, namespace string) *CachingSymbolRepository {
	if ttl < 0 {
		ttl = 0
	}
	if namespace == "" {
		namespace = "symbols"
	}
	return &CachingSymbolRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
		now:       time.Now,
	}
}

// Seed writes the universe and invalidates every cached entry.
func (c *CachingSymbolRepository) Seed(ctx context.Context, symbols []entity.Symbol) error {
	if err := c.inner.Seed(ctx, symbols); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	// Best effort: stale entries expire on their own
	if err := c.deleteByPattern(ctx, c.namespace+":*"); err != nil {
		slog.Warn("symbol cache invalidation failed", "namespace", c.namespace, "error", err)
	}
	return nil
}

// ListActive returns active symbols, checking the cache first.
func (c *CachingSymbolRepository) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	if c.rdb == nil {
		return c.inner.ListActive(ctx)
	}

	key := c.listKey()
	var out []entity.Symbol
	if c.get(ctx, key, &out) {
		return out, nil
	}

	out, err := c.inner.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, out)
	return out, nil
}

// FindByCode returns one symbol, checking the cache first. Misses are not cached.
func (c *CachingSymbolRepository) FindByCode(ctx context.Context, code string) (*entity.Symbol, error) {
	if c.rdb == nil {
		return c.inner.FindByCode(ctx, code)
	}

	key := c.codeKey(code)
	var cached entity.Symbol
	if c.get(ctx, key, &cached) {
		return &cached, nil
	}

	s, err := c.inner.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, s)
	return s, nil
}

// get decodes a cached value into dst. Corrupted entries are deleted.
func (c *CachingSymbolRepository) get(ctx context.Context, key string, dst any) bool {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil || len(b) == 0 {
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
		return false
	}
	return true
}

// set stores v (best effort).
func (c *CachingSymbolRepository) set(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, key, b, c.expiry()).Err()
}

func (c *CachingSymbolRepository) expiry() time.Duration {
	if c.ttl > 0 {
		return c.ttl
	}
	return TimeUntilNextHour(c.now(), time.UTC, DefaultRefreshHour)
}

func (c *CachingSymbolRepository) listKey() string {
	return fmt.Sprintf("%s:active", c.namespace)
}

func (c *CachingSymbolRepository) codeKey(code string) string {
	return fmt.Sprintf("%s:code:%s", c.namespace, safe(code))
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingSymbolRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	s = strings.ReplaceAll(s, "*", "_")
	return s
}
