// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	catalogadapters "loomspace_backend/internal/feature/catalog/adapters"
	catalogusecase "loomspace_backend/internal/feature/catalog/usecase"
	"loomspace_backend/internal/platform/cache"
)

// NewCatalogRepositories creates the product and category repositories.
// If Redis is available, they are wrapped with the caching decorators.
// Otherwise, the GORM implementations are returned as is.
func NewCatalogRepositories(db *gorm.DB, rdb *redis.Client, ttl time.Duration) (catalogusecase.ProductRepository, catalogusecase.CategoryRepository) {
	products := catalogadapters.NewProductGorm(db)
	categories := catalogadapters.NewCategoryGorm(db)
	if rdb == nil {
		return products, categories
	}
	return cache.NewCachingProductRepository(rdb, ttl, products),
		cache.NewCachingCategoryRepository(rdb, ttl, categories)
}
