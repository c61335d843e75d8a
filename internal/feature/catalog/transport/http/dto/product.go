// Package dto defines the JSON shapes of the catalog endpoints.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"loomspace_backend/internal/feature/catalog/domain/entity"
)

// CreateProductReq is the body of POST /products.
// Price accepts a JSON number or a numeric string.
type CreateProductReq struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	CategoryID  string           `json:"categoryId" binding:"required"`
	Images      []string         `json:"images"`
}

// ToEntity converts the request to a product without slug.
func (r CreateProductReq) ToEntity() *entity.Product {
	return &entity.Product{
		Name:        r.Name,
		Description: r.Description,
		Price:       *r.Price,
		CategoryID:  r.CategoryID,
		Images:      r.Images,
	}
}

// UpdateProductReq is the body of PUT /products/:id. Absent fields are left unchanged.
type UpdateProductReq struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  *string          `json:"categoryId"`
	Images      []string         `json:"images"`
}

// ToChanges converts the request to entity.ProductChanges.
func (r UpdateProductReq) ToChanges() entity.ProductChanges {
	return entity.ProductChanges{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		CategoryID:  r.CategoryID,
		Images:      r.Images,
	}
}

// CreateReviewReq is the body of POST /products/:slug/reviews.
type CreateReviewReq struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// VariantRes is a size/color option of a product.
type VariantRes struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Stock     int    `json:"stock"`
}

// ReviewerRes carries the reviewer's display name only.
type ReviewerRes struct {
	Name string `json:"name"`
}

// ReviewRes is a product review.
type ReviewRes struct {
	ID        string      `json:"id"`
	ProductID string      `json:"productId"`
	UserID    string      `json:"userId"`
	Rating    int         `json:"rating"`
	Comment   string      `json:"comment"`
	CreatedAt time.Time   `json:"createdAt"`
	User      ReviewerRes `json:"user"`
}

// ProductRes is a product as returned by the API.
type ProductRes struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  string          `json:"categoryId"`
	Category    *CategoryRes    `json:"category,omitempty"`
	Images      []string        `json:"images"`
	Variants    []VariantRes    `json:"variants"`
	Reviews     []ReviewRes     `json:"reviews,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// NewReviewRes converts a review entity.
func NewReviewRes(r *entity.Review) ReviewRes {
	return ReviewRes{
		ID:        r.ID,
		ProductID: r.ProductID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		User:      ReviewerRes{Name: r.User.Name},
	}
}

// NewProductRes converts a product entity. Reviews are included when loaded.
func NewProductRes(p *entity.Product) ProductRes {
	res := ProductRes{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		Images:      p.Images,
		Variants:    make([]VariantRes, 0, len(p.Variants)),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if res.Images == nil {
		res.Images = []string{}
	}
	if p.Category.ID != "" {
		c := NewCategoryRes(&p.Category)
		res.Category = &c
	}
	for _, v := range p.Variants {
		res.Variants = append(res.Variants, VariantRes{
			ID: v.ID, ProductID: v.ProductID, Size: v.Size, Color: v.Color, Stock: v.Stock,
		})
	}
	if p.Reviews != nil {
		res.Reviews = make([]ReviewRes, 0, len(p.Reviews))
		for i := range p.Reviews {
			res.Reviews = append(res.Reviews, NewReviewRes(&p.Reviews[i]))
		}
	}
	return res
}

// NewProductListRes converts products, keeping order.
func NewProductListRes(products []entity.Product) []ProductRes {
	res := make([]ProductRes, 0, len(products))
	for i := range products {
		res = append(res, NewProductRes(&products[i]))
	}
	return res
}
