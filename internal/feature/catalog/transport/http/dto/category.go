package dto

import (
	"time"

	"loomspace_backend/internal/feature/catalog/domain/entity"
)

// CategoryReq is the body of POST and PUT /categories.
type CategoryReq struct {
	Name string `json:"name" binding:"required"`
}

// CategoryRes is a category as returned by the API.
type CategoryRes struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MessageRes is a plain acknowledgement.
type MessageRes struct {
	Message string `json:"message"`
}

// NewCategoryRes converts a category entity.
func NewCategoryRes(c *entity.Category) CategoryRes {
	return CategoryRes{ID: c.ID, Name: c.Name, Slug: c.Slug, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

// NewCategoryListRes converts categories, keeping order.
func NewCategoryListRes(categories []entity.Category) []CategoryRes {
	res := make([]CategoryRes, 0, len(categories))
	for i := range categories {
		res = append(res, NewCategoryRes(&categories[i]))
	}
	return res
}
