package usecase

import (
	"context"

	"loomspace_backend/internal/feature/catalog/domain/entity"
)

// mockProductRepository is a func-field mock of ProductRepository.
type mockProductRepository struct {
	ListFunc       func(filter entity.ProductFilter) ([]entity.Product, error)
	FindBySlugFunc func(slug string) (*entity.Product, error)
	FindByIDFunc   func(id string) (*entity.Product, error)
	SlugExistsFunc func(slug, excludeID string) (bool, error)
	CreateFunc     func(p *entity.Product) error
	UpdateFunc     func(p *entity.Product) error
	DeleteFunc     func(id string) error
	AddReviewFunc  func(r *entity.Review) error
}

func (m *mockProductRepository) List(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error) {
	if m.ListFunc != nil {
		return m.ListFunc(filter)
	}
	return []entity.Product{}, nil
}

func (m *mockProductRepository) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(slug)
	}
	return nil, ErrProductNotFound
}

func (m *mockProductRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(id)
	}
	return nil, ErrProductNotFound
}

func (m *mockProductRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	if m.SlugExistsFunc != nil {
		return m.SlugExistsFunc(slug, excludeID)
	}
	return false, nil
}

func (m *mockProductRepository) Create(ctx context.Context, p *entity.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(p)
	}
	return nil
}

func (m *mockProductRepository) Update(ctx context.Context, p *entity.Product) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(p)
	}
	return nil
}

func (m *mockProductRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil
}

func (m *mockProductRepository) AddReview(ctx context.Context, r *entity.Review) error {
	if m.AddReviewFunc != nil {
		return m.AddReviewFunc(r)
	}
	return nil
}

// mockCategoryRepository is a func-field mock of CategoryRepository.
type mockCategoryRepository struct {
	ListFunc       func() ([]entity.Category, error)
	FindByIDFunc   func(id string) (*entity.Category, error)
	SlugExistsFunc func(slug, excludeID string) (bool, error)
	CreateFunc     func(c *entity.Category) error
	UpdateFunc     func(c *entity.Category) error
	DeleteFunc     func(id string) error
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc()
	}
	return []entity.Category{}, nil
}

func (m *mockCategoryRepository) FindByID(ctx context.Context, id string) (*entity.Category, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(id)
	}
	return nil, ErrCategoryNotFound
}

func (m *mockCategoryRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	if m.SlugExistsFunc != nil {
		return m.SlugExistsFunc(slug, excludeID)
	}
	return false, nil
}

func (m *mockCategoryRepository) Create(ctx context.Context, c *entity.Category) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(c)
	}
	return nil
}

func (m *mockCategoryRepository) Update(ctx context.Context, c *entity.Category) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(c)
	}
	return nil
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil
}

// knownCategory returns a FindByID func that only knows the category "cat-1".
func knownCategory(id string) (*entity.Category, error) {
	if id == "cat-1" {
		return &entity.Category{ID: "cat-1", Name: "Men", Slug: "men"}, nil
	}
	return nil, ErrCategoryNotFound
}
