// Package usecase computes the admin dashboard figures.
package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"loomspace_backend/internal/feature/dashboard/domain/entity"
)

// StatsRepository reads the raw figures behind the dashboard.
type StatsRepository interface {
	CountOrders(ctx context.Context) (int64, error)
	CountProducts(ctx context.Context) (int64, error)
	// OrderTotals returns the total of every order.
	OrderTotals(ctx context.Context) ([]decimal.Decimal, error)
}

type dashboardUsecase struct {
	stats StatsRepository
}

// NewDashboardUsecase creates a dashboard usecase.
func NewDashboardUsecase(stats StatsRepository) *dashboardUsecase {
	return &dashboardUsecase{stats: stats}
}

// Stats counts orders and products and sums the order totals.
func (u *dashboardUsecase) Stats(ctx context.Context) (*entity.Stats, error) {
	orders, err := u.stats.CountOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}
	products, err := u.stats.CountProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}
	totals, err := u.stats.OrderTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("load order totals: %w", err)
	}

	revenue := decimal.Zero
	for _, t := range totals {
		revenue = revenue.Add(t)
	}
	return &entity.Stats{TotalOrders: orders, TotalProducts: products, TotalRevenue: revenue}, nil
}
