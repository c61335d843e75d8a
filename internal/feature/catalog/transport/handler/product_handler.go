// Package handler provides the HTTP handlers of the catalog feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"loomspace_backend/internal/feature/catalog/domain/entity"
	"loomspace_backend/internal/feature/catalog/transport/http/dto"
	"loomspace_backend/internal/platform/apperr"
	"loomspace_backend/internal/platform/http/httperr"
	jwtmw "loomspace_backend/internal/platform/jwt"
)

var errNoUser = apperr.Unauthorized("user not authenticated")

// ProductUsecase defines the product operations served over HTTP.
// Interfaces are defined by the consumer (handler), not the provider (usecase).
type ProductUsecase interface {
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error)
	CreateProduct(ctx context.Context, p *entity.Product) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id string, changes entity.ProductChanges) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	CreateReview(ctx context.Context, slug, userID string, rating int, comment string) (*entity.Review, error)
}

// ProductHandler handles the /products endpoints.
type ProductHandler struct {
	products ProductUsecase
}

// NewProductHandler creates a ProductHandler.
func NewProductHandler(products ProductUsecase) *ProductHandler {
	return &ProductHandler{products: products}
}

// List handles GET /products?category=<slug>&search=<text>.
func (h *ProductHandler) List(c *gin.Context) {
	filter := entity.ProductFilter{
		CategorySlug: c.Query("category"),
		Search:       c.Query("search"),
	}
	products, err := h.products.ListProducts(c.Request.Context(), filter)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductListRes(products))
}

// GetBySlug handles GET /products/:slug.
func (h *ProductHandler) GetBySlug(c *gin.Context) {
	p, err := h.products.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductRes(p))
}

// Create handles POST /products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	p, err := h.products.CreateProduct(c.Request.Context(), req.ToEntity())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	slog.Info("product created", "product_id", p.ID, "slug", p.Slug)
	c.JSON(http.StatusCreated, dto.NewProductRes(p))
}

// Update handles PUT /products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	var req dto.UpdateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	p, err := h.products.UpdateProduct(c.Request.Context(), c.Param("id"), req.ToChanges())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductRes(p))
}

// Delete handles DELETE /products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.products.DeleteProduct(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	slog.Info("product deleted", "product_id", id)
	c.JSON(http.StatusOK, dto.MessageRes{Message: "Product deleted successfully"})
}

// CreateReview handles POST /products/:slug/reviews for the authenticated user.
func (h *ProductHandler) CreateReview(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		httperr.Respond(c, errNoUser)
		return
	}
	var req dto.CreateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	r, err := h.products.CreateReview(c.Request.Context(), c.Param("slug"), userID, req.Rating, req.Comment)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewReviewRes(r))
}
