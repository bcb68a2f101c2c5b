// Package adapters provides the bookmark store implementations.
package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"stock_dashboard/internal/feature/portfolio/usecase"
)

// DefaultTTL bounds how long an idle client's bookmarks survive.
const DefaultTTL = 24 * time.Hour

// PortfolioRedis implements usecase.Store with one Redis set per client.
type PortfolioRedis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

var _ usecase.Store = (*PortfolioRedis)(nil)

// NewPortfolioRedis creates a new PortfolioRedis. A non-positive ttl uses DefaultTTL.
func NewPortfolioRedis(client *redis.Client, prefix string, ttl time.Duration) *PortfolioRedis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &PortfolioRedis{client: client, prefix: prefix, ttl: ttl}
}

// key returns the Redis key for a client's set.
func (r *PortfolioRedis) key(clientID string) string {
	return fmt.Sprintf("%s:%s", r.prefix, clientID)
}

// Add inserts code and refreshes the expiry.
func (r *PortfolioRedis) Add(ctx context.Context, clientID, code string) error {
	k := r.key(clientID)
	_, err := r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.SAdd(ctx, k, code)
		p.Expire(ctx, k, r.ttl)
		return nil
	})
	return err
}

// Remove deletes code. The expiry is refreshed only while the set still exists.
func (r *PortfolioRedis) Remove(ctx context.Context, clientID, code string) error {
	k := r.key(clientID)
	_, err := r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.SRem(ctx, k, code)
		p.Expire(ctx, k, r.ttl)
		return nil
	})
	return err
}

// Contains reports set membership.
func (r *PortfolioRedis) Contains(ctx context.Context, clientID, code string) (bool, error) {
	return r.client.SIsMember(ctx, r.key(clientID), code).Result()
}

// Members returns the client's codes in no particular order.
func (r *PortfolioRedis) Members(ctx context.Context, clientID string) ([]string, error) {
	return r.client.SMembers(ctx, r.key(clientID)).Result()
}
