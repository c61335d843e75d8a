package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"loomspace_backend/internal/feature/dashboard/domain/entity"
)

type mockDashboardUsecase struct {
	stats *entity.Stats
	err   error
}

func (m *mockDashboardUsecase) Stats(ctx context.Context) (*entity.Stats, error) {
	return m.stats, m.err
}

func TestDashboardHandler_Stats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		uc             *mockDashboardUsecase
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			uc: &mockDashboardUsecase{stats: &entity.Stats{
				TotalOrders: 2, TotalProducts: 6, TotalRevenue: decimal.RequireFromString("105.47"),
			}},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"totalOrders":2,"totalProducts":6,"totalRevenue":105.47}`,
		},
		{
			name:           "empty store",
			uc:             &mockDashboardUsecase{stats: &entity.Stats{TotalRevenue: decimal.Zero}},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"totalOrders":0,"totalProducts":0,"totalRevenue":0}`,
		},
		{
			name:           "database error",
			uc:             &mockDashboardUsecase{err: errors.New("db down")},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/admin/dashboard", NewDashboardHandler(tt.uc).Stats)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
