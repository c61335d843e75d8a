package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"loomspace_backend/internal/feature/catalog/domain/entity"
	"loomspace_backend/internal/feature/catalog/usecase"
)

// Key namespaces. Every product key starts with "products:", every category key with "categories:".
const (
	productsNamespace   = "products"
	categoriesNamespace = "categories"
)

// CachingProductRepository decorates a ProductRepository with Redis caching of
// listings and product detail. Any write through it drops all product keys.
type CachingProductRepository struct {
	usecase.ProductRepository
	cache redisCache
}

var _ usecase.ProductRepository = (*CachingProductRepository)(nil)

// NewCachingProductRepository wraps inner. A nil rdb disables caching; ttl <= 0 means 5 minutes.
func NewCachingProductRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ProductRepository) *CachingProductRepository {
	return &CachingProductRepository{ProductRepository: inner, cache: newRedisCache(rdb, ttl)}
}

func (r *CachingProductRepository) List(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error) {
	key := productsNamespace + ":list:" + safe(filter.CategorySlug) + ":" + safe(filter.Search)
	return readThrough(ctx, r.cache, key, func() ([]entity.Product, error) {
		return r.ProductRepository.List(ctx, filter)
	})
}

func (r *CachingProductRepository) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	key := productsNamespace + ":slug:" + safe(slug)
	return readThrough(ctx, r.cache, key, func() (*entity.Product, error) {
		return r.ProductRepository.FindBySlug(ctx, slug)
	})
}

func (r *CachingProductRepository) Create(ctx context.Context, p *entity.Product) error {
	if err := r.ProductRepository.Create(ctx, p); err != nil {
		return err
	}
	r.cache.invalidate(ctx, productsNamespace)
	return nil
}

func (r *CachingProductRepository) Update(ctx context.Context, p *entity.Product) error {
	if err := r.ProductRepository.Update(ctx, p); err != nil {
		return err
	}
	r.cache.invalidate(ctx, productsNamespace)
	return nil
}

func (r *CachingProductRepository) Delete(ctx context.Context, id string) error {
	if err := r.ProductRepository.Delete(ctx, id); err != nil {
		return err
	}
	r.cache.invalidate(ctx, productsNamespace)
	return nil
}

// AddReview stores the review and drops product keys, since detail responses embed reviews.
func (r *CachingProductRepository) AddReview(ctx context.Context, rv *entity.Review) error {
	if err := r.ProductRepository.AddReview(ctx, rv); err != nil {
		return err
	}
	r.cache.invalidate(ctx, productsNamespace)
	return nil
}

// CachingCategoryRepository decorates a CategoryRepository with Redis caching of the
// category list. Writes drop category keys and product keys, because product
// responses embed the category.
type CachingCategoryRepository struct {
	usecase.CategoryRepository
	cache redisCache
}

var _ usecase.CategoryRepository = (*CachingCategoryRepository)(nil)

// NewCachingCategoryRepository wraps inner. A nil rdb disables caching; ttl <= 0 means 5 minutes.
func NewCachingCategoryRepository(rdb *redis.Client, ttl time.Duration, inner usecase.CategoryRepository) *CachingCategoryRepository {
	return &CachingCategoryRepository{CategoryRepository: inner, cache: newRedisCache(rdb, ttl)}
}

func (r *CachingCategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	return readThrough(ctx, r.cache, categoriesNamespace+":list", func() ([]entity.Category, error) {
		return r.CategoryRepository.List(ctx)
	})
}

func (r *CachingCategoryRepository) Create(ctx context.Context, c *entity.Category) error {
	if err := r.CategoryRepository.Create(ctx, c); err != nil {
		return err
	}
	r.cache.invalidate(ctx, categoriesNamespace, productsNamespace)
	return nil
}

func (r *CachingCategoryRepository) Update(ctx context.Context, c *entity.Category) error {
	if err := r.CategoryRepository.Update(ctx, c); err != nil {
		return err
	}
	r.cache.invalidate(ctx, categoriesNamespace, productsNamespace)
	return nil
}

func (r *CachingCategoryRepository) Delete(ctx context.Context, id string) error {
	if err := r.CategoryRepository.Delete(ctx, id); err != nil {
		return err
	}
	r.cache.invalidate(ctx, categoriesNamespace, productsNamespace)
	return nil
}
