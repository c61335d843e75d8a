// Package adapters provides the GORM repository of the orders feature.
package adapters

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	catalogentity "loomspace_backend/internal/feature/catalog/domain/entity"
	"loomspace_backend/internal/feature/orders/domain/entity"
	"loomspace_backend/internal/feature/orders/usecase"
)

// orderGorm is the GORM implementation of usecase.OrderRepository.
type orderGorm struct {
	db *gorm.DB
}

var _ usecase.OrderRepository = (*orderGorm)(nil)

// NewOrderGorm creates an orderGorm backed by db.
func NewOrderGorm(db *gorm.DB) *orderGorm {
	return &orderGorm{db: db}
}

func (r *orderGorm) ProductPrices(ctx context.Context, productIDs []string) (map[string]decimal.Decimal, error) {
	var rows []catalogentity.Product
	err := r.db.WithContext(ctx).
		Select("id", "price").
		Where("id IN ?", productIDs).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	prices := make(map[string]decimal.Decimal, len(rows))
	for _, p := range rows {
		prices[p.ID] = p.Price
	}
	return prices, nil
}

// Create inserts the order row, then its items, in one transaction.
// Associations are omitted so that GORM never upserts the product or user rows.
func (r *orderGorm) Create(ctx context.Context, o *entity.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(o).Error; err != nil {
			return err
		}
		if len(o.Items) == 0 {
			return nil
		}
		for i := range o.Items {
			o.Items[i].OrderID = o.ID
		}
		return tx.Omit(clause.Associations).Create(&o.Items).Error
	})
}

func (r *orderGorm) ListByUser(ctx context.Context, userID string) ([]entity.Order, error) {
	orders := []entity.Order{}
	err := r.db.WithContext(ctx).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderGorm) ListAll(ctx context.Context, status entity.Status) ([]entity.Order, error) {
	q := r.db.WithContext(ctx).
		Preload("User", func(db *gorm.DB) *gorm.DB { return db.Select("id", "name", "email") }).
		Preload("Items.Product")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	orders := []entity.Order{}
	if err := q.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus sets the status of order id. Setting the current status again is not an error.
func (r *orderGorm) UpdateStatus(ctx context.Context, id string, status entity.Status) (*entity.Order, error) {
	db := r.db.WithContext(ctx)
	var o entity.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").Where("id = ?", id).First(&o).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrOrderNotFound
			}
			return err
		}
		return tx.Model(&o).Update("status", status).Error
	})
	if err != nil {
		return nil, err
	}

	var updated entity.Order
	if err := db.Preload("Items.Product").Where("id = ?", id).First(&updated).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}
