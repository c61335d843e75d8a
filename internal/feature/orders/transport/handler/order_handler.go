// Package handler provides the HTTP handlers of the orders feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"loomspace_backend/internal/feature/orders/domain/entity"
	"loomspace_backend/internal/feature/orders/transport/http/dto"
	"loomspace_backend/internal/feature/orders/usecase"
	"loomspace_backend/internal/platform/http/httperr"
	jwtmw "loomspace_backend/internal/platform/jwt"
)

// OrderUsecase defines the order operations served over HTTP.
type OrderUsecase interface {
	PlaceOrder(ctx context.Context, userID string, lines []entity.LineRequest, ship entity.ShippingDetails) (*entity.Order, error)
	MyOrders(ctx context.Context, userID string) ([]entity.Order, error)
	AllOrders(ctx context.Context, status entity.Status) ([]entity.Order, error)
	UpdateStatus(ctx context.Context, id string, status entity.Status) (*entity.Order, error)
}

// OrderHandler handles the customer and admin order endpoints.
type OrderHandler struct {
	orders OrderUsecase
}

// NewOrderHandler creates an OrderHandler.
func NewOrderHandler(orders OrderUsecase) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Create handles POST /orders.
func (h *OrderHandler) Create(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		httperr.Respond(c, usecase.ErrUnauthenticated)
		return
	}
	var req dto.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	order, err := h.orders.PlaceOrder(c.Request.Context(), userID, req.Lines(), req.Shipping())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewOrderRes(order))
}

// MyOrders handles GET /orders/my-orders.
func (h *OrderHandler) MyOrders(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		httperr.Respond(c, usecase.ErrUnauthenticated)
		return
	}
	orders, err := h.orders.MyOrders(c.Request.Context(), userID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderListRes(orders))
}

// List handles GET /admin/orders[?status=...].
func (h *OrderHandler) List(c *gin.Context) {
	var q dto.ListOrdersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	orders, err := h.orders.AllOrders(c.Request.Context(), entity.Status(q.Status))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderListRes(orders))
}

// UpdateStatus handles PUT /admin/orders/:id.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	order, err := h.orders.UpdateStatus(c.Request.Context(), c.Param("id"), entity.Status(req.Status))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderRes(order))
}
