package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"loomspace_backend/internal/feature/catalog/domain/entity"
	"loomspace_backend/internal/feature/catalog/transport/http/dto"
	"loomspace_backend/internal/platform/http/httperr"
)

// CategoryUsecase defines the category operations served over HTTP.
type CategoryUsecase interface {
	ListCategories(ctx context.Context) ([]entity.Category, error)
	CreateCategory(ctx context.Context, name string) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id, name string) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

// CategoryHandler handles the /categories endpoints.
type CategoryHandler struct {
	categories CategoryUsecase
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(categories CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// List handles GET /categories.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.ListCategories(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryListRes(categories))
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	cat, err := h.categories.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	slog.Info("category created", "category_id", cat.ID, "slug", cat.Slug)
	c.JSON(http.StatusCreated, dto.NewCategoryRes(cat))
}

// Update handles PUT /categories/:id.
func (h *CategoryHandler) Update(c *gin.Context) {
	var req dto.CategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	cat, err := h.categories.UpdateCategory(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryRes(cat))
}

// Delete handles DELETE /categories/:id.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.categories.DeleteCategory(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	slog.Info("category deleted", "category_id", id)
	c.JSON(http.StatusOK, dto.MessageRes{Message: "Category deleted successfully"})
}
