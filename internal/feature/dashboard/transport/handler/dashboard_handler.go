// Package handler serves the admin dashboard.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"loomspace_backend/internal/feature/dashboard/domain/entity"
	"loomspace_backend/internal/feature/dashboard/transport/http/dto"
	"loomspace_backend/internal/platform/http/httperr"
)

// DashboardUsecase computes the dashboard figures.
type DashboardUsecase interface {
	Stats(ctx context.Context) (*entity.Stats, error)
}

// DashboardHandler handles GET /admin/dashboard.
type DashboardHandler struct {
	dashboard DashboardUsecase
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(dashboard DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Stats returns the order and product counts and the total revenue.
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboard.Stats(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewStatsRes(stats))
}
