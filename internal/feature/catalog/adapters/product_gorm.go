// Package adapters provides the GORM repositories of the catalog feature.
package adapters

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"loomspace_backend/internal/feature/catalog/domain/entity"
	"loomspace_backend/internal/feature/catalog/usecase"
	orderentity "loomspace_backend/internal/feature/orders/domain/entity"
)

// productGorm is the GORM implementation of usecase.ProductRepository.
type productGorm struct {
	db *gorm.DB
}

var _ usecase.ProductRepository = (*productGorm)(nil)

// likeEscaper makes search text match literally inside LIKE ... ESCAPE '!'.
// '!' works unchanged on MySQL, Postgres and SQLite, unlike a backslash.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// NewProductGorm creates a productGorm backed by db.
func NewProductGorm(db *gorm.DB) *productGorm {
	return &productGorm{db: db}
}

// List returns the products matching filter, newest first, with category and variants.
func (r *productGorm) List(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error) {
	q := r.db.WithContext(ctx).Model(&entity.Product{}).
		Preload("Category").
		Preload("Variants")

	if filter.CategorySlug != "" {
		q = q.Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}
	if filter.Search != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(filter.Search)) + "%"
		q = q.Where("(LOWER(products.name) LIKE ? ESCAPE '!' OR LOWER(products.description) LIKE ? ESCAPE '!')", pattern, pattern)
	}

	products := []entity.Product{}
	if err := q.Order("products.created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindBySlug returns the product with category, variants and reviews.
// Only the reviewer's id and name are loaded.
func (r *productGorm) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var p entity.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Variants").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Preload("Reviews.User", func(db *gorm.DB) *gorm.DB { return db.Select("id", "name") }).
		Where("slug = ?", slug).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindByID returns the product with category and variants.
func (r *productGorm) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	var p entity.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Variants").
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

// SlugExists reports whether a product other than excludeID uses slug.
func (r *productGorm) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).Model(&entity.Product{}).Where("slug = ?", slug)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create inserts the product row only; associations are never written from here.
func (r *productGorm) Create(ctx context.Context, p *entity.Product) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return usecase.ErrSlugTaken
	}
	return err
}

// Update writes every column of p.
func (r *productGorm) Update(ctx context.Context, p *entity.Product) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(p).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return usecase.ErrSlugTaken
	}
	return err
}

// Delete removes the product, its variants and its reviews in one transaction.
// Products that appear in an order are kept and usecase.ErrProductInOrders is returned.
func (r *productGorm) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p entity.Product
		if err := tx.Select("id").Where("id = ?", id).First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrProductNotFound
			}
			return err
		}

		var items int64
		if err := tx.Model(&orderentity.OrderItem{}).Where("product_id = ?", id).Count(&items).Error; err != nil {
			return err
		}
		if items > 0 {
			return usecase.ErrProductInOrders
		}

		if err := tx.Where("product_id = ?", id).Delete(&entity.Variant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&entity.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&p).Error
	})
}

// AddReview inserts r and loads the reviewer's name into r.User.
func (r *productGorm) AddReview(ctx context.Context, rv *entity.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id", "name").Where("id = ?", rv.UserID).First(&rv.User).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrReviewerNotFound
			}
			return err
		}
		return tx.Omit(clause.Associations).Create(rv).Error
	})
}
