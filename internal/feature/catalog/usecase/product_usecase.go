package usecase

import (
	"context"
	"errors"
	"strings"

	"loomspace_backend/internal/feature/catalog/domain/entity"
)

// Review rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// ProductRepository abstracts product persistence.
// Interfaces are defined by the consumer (usecase), not the provider (adapters).
type ProductRepository interface {
	// List returns products matching filter, joined with category and variants.
	List(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error)
	// FindBySlug returns one product joined with category, variants and reviews.
	FindBySlug(ctx context.Context, slug string) (*entity.Product, error)
	// FindByID returns one product joined with category and variants.
	FindByID(ctx context.Context, id string) (*entity.Product, error)
	// SlugExists reports whether another product than excludeID uses slug.
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	Create(ctx context.Context, p *entity.Product) error
	Update(ctx context.Context, p *entity.Product) error
	// Delete removes the product with its variants and reviews.
	// It returns ErrProductInOrders when an order item references the product.
	Delete(ctx context.Context, id string) error
	// AddReview stores r and fills r.User with the reviewer's name.
	AddReview(ctx context.Context, r *entity.Review) error
}

// productUsecase implements the product catalog operations.
type productUsecase struct {
	products   ProductRepository
	categories CategoryRepository
}

// NewProductUsecase creates a new productUsecase.
func NewProductUsecase(products ProductRepository, categories CategoryRepository) *productUsecase {
	return &productUsecase{products: products, categories: categories}
}

// ListProducts returns the products matching filter. A product matches the search when
// its name or description contains the text, ignoring case.
func (u *productUsecase) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error) {
	filter.CategorySlug = strings.TrimSpace(filter.CategorySlug)
	filter.Search = strings.TrimSpace(filter.Search)
	return u.products.List(ctx, filter)
}

// GetProductBySlug returns the product with its reviews.
func (u *productUsecase) GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	return u.products.FindBySlug(ctx, slug)
}

// CreateProduct validates the input, derives a unique slug and stores the product.
func (u *productUsecase) CreateProduct(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, ErrNameRequired
	}
	if p.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	category, err := u.lookupCategory(ctx, p.CategoryID)
	if err != nil {
		return nil, err
	}

	slug, err := uniqueSlug(ctx, p.Name, u.productSlugExists(""))
	if err != nil {
		return nil, err
	}
	p.Slug = slug
	if p.Images == nil {
		p.Images = []string{}
	}

	if err := u.products.Create(ctx, p); err != nil {
		return nil, err
	}
	p.Category = *category
	if p.Variants == nil {
		p.Variants = []entity.Variant{}
	}
	return p, nil
}

// UpdateProduct applies the supplied fields only. A new name also renews the slug.
func (u *productUsecase) UpdateProduct(ctx context.Context, id string, changes entity.ProductChanges) (*entity.Product, error) {
	p, err := u.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if changes.Name != nil {
		if strings.TrimSpace(*changes.Name) == "" {
			return nil, ErrNameRequired
		}
		if *changes.Name != p.Name {
			slug, err := uniqueSlug(ctx, *changes.Name, u.productSlugExists(p.ID))
			if err != nil {
				return nil, err
			}
			p.Name = *changes.Name
			p.Slug = slug
		}
	}
	if changes.Description != nil {
		p.Description = *changes.Description
	}
	if changes.Price != nil {
		if changes.Price.IsNegative() {
			return nil, ErrInvalidPrice
		}
		p.Price = *changes.Price
	}
	if changes.CategoryID != nil && *changes.CategoryID != p.CategoryID {
		if _, err := u.lookupCategory(ctx, *changes.CategoryID); err != nil {
			return nil, err
		}
		p.CategoryID = *changes.CategoryID
	}
	if changes.Images != nil {
		p.Images = changes.Images
	}

	if err := u.products.Update(ctx, p); err != nil {
		return nil, err
	}
	// Reload so that the response carries the new category.
	return u.products.FindByID(ctx, p.ID)
}

// DeleteProduct removes a product that no order refers to.
func (u *productUsecase) DeleteProduct(ctx context.Context, id string) error {
	return u.products.Delete(ctx, id)
}

// CreateReview records userID's rating of the product identified by slug.
func (u *productUsecase) CreateReview(ctx context.Context, slug, userID string, rating int, comment string) (*entity.Review, error) {
	if rating < MinRating || rating > MaxRating {
		return nil, ErrInvalidRating
	}
	p, err := u.products.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	r := &entity.Review{
		ProductID: p.ID,
		UserID:    userID,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
	}
	if err := u.products.AddReview(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// lookupCategory maps a missing category to ErrUnknownCategory, since here it is part of the input.
func (u *productUsecase) lookupCategory(ctx context.Context, id string) (*entity.Category, error) {
	c, err := u.categories.FindByID(ctx, id)
	if errors.Is(err, ErrCategoryNotFound) {
		return nil, ErrUnknownCategory
	}
	return c, err
}

func (u *productUsecase) productSlugExists(excludeID string) slugExists {
	return func(ctx context.Context, slug string) (bool, error) {
		return u.products.SlugExists(ctx, slug, excludeID)
	}
}
