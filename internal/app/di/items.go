// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/KoheiTanihara/Gado-back/internal/feature/items/adapters"
	"github.com/KoheiTanihara/Gado-back/internal/feature/items/usecase"
	"github.com/KoheiTanihara/Gado-back/internal/platform/cache"
)

// NewItemRepository creates an ItemRepository implementation.
// If Redis is available, the MySQL repository is wrapped with a read-through
// list cache. Otherwise, the MySQL repository is used directly.
func NewItemRepository(rdb *redis.Client, db *gorm.DB) usecase.ItemRepository {
	repo := adapters.NewItemMySQL(db)
	if rdb != nil {
		return cache.NewCachingItemRepository(rdb, 5*time.Minute, repo, "items")
	}
	return repo
}
