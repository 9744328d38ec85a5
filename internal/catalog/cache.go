package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
)

// CachedStore layers a Redis read-through cache over a Store. Cached
// records serve validation lookups; stock writes always hit the backing
// store and drop the stale cache entry afterwards.
type CachedStore struct {
	store Store
	rdb   *redis.Client
	ttl   time.Duration
}

var _ Store = (*CachedStore)(nil)

func NewCachedStore(store Store, rdb *redis.Client, ttl time.Duration) *CachedStore {
	return &CachedStore{store: store, rdb: rdb, ttl: ttl}
}

func cacheKey(id uint64) string {
	return fmt.Sprintf("product:%d", id)
}

func (c *CachedStore) FindByID(ctx context.Context, id uint64) (*Product, error) {
	key := cacheKey(id)

	cached, err := c.rdb.Get(ctx, key).Result()
	if err == nil {
		var p Product
		if err := json.Unmarshal([]byte(cached), &p); err == nil {
			return &p, nil
		}
	}

	p, err := c.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if p != nil {
		if data, err := json.Marshal(p); err == nil {
			if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
				slog.Warn("product cache set failed", "productId", id, "error", err)
			}
		}
	}

	return p, nil
}

func (c *CachedStore) DecrementStock(ctx context.Context, id uint64, qty int64) error {
	if err := c.store.DecrementStock(ctx, id, qty); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}

func (c *CachedStore) RestoreStock(ctx context.Context, id uint64, qty int64) error {
	if err := c.store.RestoreStock(ctx, id, qty); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}

func (c *CachedStore) invalidate(ctx context.Context, id uint64) {
	if err := c.rdb.Del(ctx, cacheKey(id)).Err(); err != nil {
		slog.Warn("product cache invalidation failed", "productId", id, "error", err)
	}
}
