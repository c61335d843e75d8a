package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"loomspace_backend/internal/feature/catalog/domain/entity"
	"loomspace_backend/internal/feature/catalog/usecase"
)

// categoryGorm is the GORM implementation of usecase.CategoryRepository.
type categoryGorm struct {
	db *gorm.DB
}

var _ usecase.CategoryRepository = (*categoryGorm)(nil)

// NewCategoryGorm creates a categoryGorm backed by db.
func NewCategoryGorm(db *gorm.DB) *categoryGorm {
	return &categoryGorm{db: db}
}

func (r *categoryGorm) List(ctx context.Context) ([]entity.Category, error) {
	categories := []entity.Category{}
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryGorm) FindByID(ctx context.Context, id string) (*entity.Category, error) {
	var c entity.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCategoryNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *categoryGorm) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).Model(&entity.Category{}).Where("slug = ?", slug)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create inserts c. A taken name or slug is reported as usecase.ErrCategoryExists.
func (r *categoryGorm) Create(ctx context.Context, c *entity.Category) error {
	err := r.db.WithContext(ctx).Create(c).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return usecase.ErrCategoryExists
	}
	return err
}

func (r *categoryGorm) Update(ctx context.Context, c *entity.Category) error {
	err := r.db.WithContext(ctx).Save(c).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return usecase.ErrCategoryExists
	}
	return err
}

// Delete removes a category that no product references.
func (r *categoryGorm) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c entity.Category
		if err := tx.Where("id = ?", id).First(&c).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrCategoryNotFound
			}
			return err
		}
		var products int64
		if err := tx.Model(&entity.Product{}).Where("category_id = ?", id).Count(&products).Error; err != nil {
			return err
		}
		if products > 0 {
			return usecase.ErrCategoryInUse
		}
		return tx.Delete(&c).Error
	})
}
