// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KoheiTanihara/Gado-back/internal/feature/items/domain/entity"
	"github.com/KoheiTanihara/Gado-back/internal/feature/items/usecase"
)

// CachingItemRepository decorates an ItemRepository with Redis caching of
// per-owner list queries. It implements the decorator pattern, transparently
// adding caching without modifying the underlying repository.
//
// Only ListByOwner results are cached; single-item reads go straight to the
// store so invalidation stays a single per-owner wildcard delete.
type CachingItemRepository struct {
	inner     usecase.ItemRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.ItemRepository = (*CachingItemRepository)(nil)

// NewCachingItemRepository decorates an ItemRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "items".
func NewCachingItemRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ItemRepository, namespace string) *CachingItemRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "items"
	}
	return &CachingItemRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create persists the item and invalidates the owner's cached lists.
func (c *CachingItemRepository) Create(ctx context.Context, item *entity.Item) error {
	if err := c.inner.Create(ctx, item); err != nil {
		return err
	}
	c.invalidateOwner(ctx, item.OwnerID)
	return nil
}

// ListByOwner retrieves items, checking cache first then falling back to the database.
func (c *CachingItemRepository) ListByOwner(ctx context.Context, ownerID uint, skip, limit int) ([]entity.Item, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.ListByOwner(ctx, ownerID, skip, limit)
	}

	key := c.listKey(ownerID, skip, limit)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Item
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.ListByOwner(ctx, ownerID, skip, limit)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindByID is a pass-through; single items are not cached.
func (c *CachingItemRepository) FindByID(ctx context.Context, ownerID, id uint) (*entity.Item, error) {
	return c.inner.FindByID(ctx, ownerID, id)
}

// Update saves the item and invalidates the owner's cached lists.
func (c *CachingItemRepository) Update(ctx context.Context, item *entity.Item) error {
	if err := c.inner.Update(ctx, item); err != nil {
		return err
	}
	c.invalidateOwner(ctx, item.OwnerID)
	return nil
}

// Delete removes the item and invalidates the owner's cached lists.
func (c *CachingItemRepository) Delete(ctx context.Context, ownerID, id uint) error {
	if err := c.inner.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	c.invalidateOwner(ctx, ownerID)
	return nil
}

// listKey generates a cache key for a specific list query.
func (c *CachingItemRepository) listKey(ownerID uint, skip, limit int) string {
	return fmt.Sprintf("%s:owner:%d:%d:%d", c.namespace, ownerID, skip, limit)
}

// ownerKeyPrefix generates a prefix for invalidating an owner's cached lists.
func (c *CachingItemRepository) ownerKeyPrefix(ownerID uint) string {
	return fmt.Sprintf("%s:owner:%d:", c.namespace, ownerID)
}

// invalidateOwner deletes the owner's cached list entries. Best effort:
// a cache failure never fails the write that triggered it.
func (c *CachingItemRepository) invalidateOwner(ctx context.Context, ownerID uint) {
	if c.rdb == nil {
		return
	}
	_ = c.deleteByPattern(ctx, c.ownerKeyPrefix(ownerID)+"*")
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingItemRepository) deleteByPattern(ctx context.Context, pattern string) error {
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
