package adapters

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	catalogentity "loomspace_backend/internal/feature/catalog/domain/entity"
	"loomspace_backend/internal/feature/dashboard/usecase"
	orderentity "loomspace_backend/internal/feature/orders/domain/entity"
)

// statsGorm is the GORM implementation of usecase.StatsRepository.
type statsGorm struct {
	db *gorm.DB
}

var _ usecase.StatsRepository = (*statsGorm)(nil)

// NewStatsGorm creates a statsGorm backed by db.
func NewStatsGorm(db *gorm.DB) *statsGorm {
	return &statsGorm{db: db}
}

func (r *statsGorm) CountOrders(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&orderentity.Order{}).Count(&n).Error
	return n, err
}

func (r *statsGorm) CountProducts(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&catalogentity.Product{}).Count(&n).Error
	return n, err
}

// OrderTotals loads the total column of every order. The sum is taken in Go
// so that the decimal arithmetic is the same on every driver.
func (r *statsGorm) OrderTotals(ctx context.Context) ([]decimal.Decimal, error) {
	totals := []decimal.Decimal{}
	if err := r.db.WithContext(ctx).Model(&orderentity.Order{}).Pluck("total", &totals).Error; err != nil {
		return nil, err
	}
	return totals, nil
}
