package usecase

import (
	"context"
	"strings"

	"loomspace_backend/internal/feature/catalog/domain/entity"
)

// CategoryRepository abstracts category persistence.
type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
	// FindByID returns ErrCategoryNotFound when no row matches.
	FindByID(ctx context.Context, id string) (*entity.Category, error)
	// SlugExists reports whether another category than excludeID uses slug.
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	// Create returns ErrCategoryExists when the name is taken.
	Create(ctx context.Context, c *entity.Category) error
	Update(ctx context.Context, c *entity.Category) error
	// Delete returns ErrCategoryInUse while products reference the category.
	Delete(ctx context.Context, id string) error
}

// categoryUsecase implements category management.
type categoryUsecase struct {
	categories CategoryRepository
}

// NewCategoryUsecase creates a new categoryUsecase.
func NewCategoryUsecase(categories CategoryRepository) *categoryUsecase {
	return &categoryUsecase{categories: categories}
}

// ListCategories returns every category ordered by name.
func (u *categoryUsecase) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return u.categories.List(ctx)
}

// CreateCategory stores a category whose slug is derived from name.
func (u *categoryUsecase) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	slug, err := uniqueSlug(ctx, name, u.slugExists(""))
	if err != nil {
		return nil, err
	}
	c := &entity.Category{Name: name, Slug: slug}
	if err := u.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateCategory renames a category and renews its slug.
func (u *categoryUsecase) UpdateCategory(ctx context.Context, id, name string) (*entity.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	c, err := u.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Name == name {
		return c, nil
	}
	slug, err := uniqueSlug(ctx, name, u.slugExists(c.ID))
	if err != nil {
		return nil, err
	}
	c.Name = name
	c.Slug = slug
	if err := u.categories.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCategory removes a category without products.
func (u *categoryUsecase) DeleteCategory(ctx context.Context, id string) error {
	return u.categories.Delete(ctx, id)
}

func (u *categoryUsecase) slugExists(excludeID string) slugExists {
	return func(ctx context.Context, slug string) (bool, error) {
		return u.categories.SlugExists(ctx, slug, excludeID)
	}
}
