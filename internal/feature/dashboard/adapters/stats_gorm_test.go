package adapters

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authentity "loomspace_backend/internal/feature/auth/domain/entity"
	catalogentity "loomspace_backend/internal/feature/catalog/domain/entity"
	orderentity "loomspace_backend/internal/feature/orders/domain/entity"
	"loomspace_backend/internal/platform/db/dbtest"
)

func TestStatsGorm_Empty(t *testing.T) {
	repo := NewStatsGorm(dbtest.New(t))
	ctx := context.Background()

	orders, err := repo.CountOrders(ctx)
	require.NoError(t, err)
	assert.Zero(t, orders)

	products, err := repo.CountProducts(ctx)
	require.NoError(t, err)
	assert.Zero(t, products)

	totals, err := repo.OrderTotals(ctx)
	require.NoError(t, err)
	assert.NotNil(t, totals)
	assert.Empty(t, totals)
}

func TestStatsGorm_Counts(t *testing.T) {
	db := dbtest.New(t)
	user := &authentity.User{Email: "alice@example.com", Name: "Alice", Password: "hash"}
	require.NoError(t, db.Create(user).Error)
	cat := &catalogentity.Category{Name: "Men", Slug: "men"}
	require.NoError(t, db.Create(cat).Error)
	for _, name := range []string{"tee", "cap", "hoodie"} {
		p := &catalogentity.Product{Name: name, Slug: name, Price: decimal.RequireFromString("10"), CategoryID: cat.ID, Images: []string{}}
		require.NoError(t, db.Create(p).Error)
	}
	for _, total := range []string{"75.48", "29.99"} {
		o := &orderentity.Order{
			UserID: user.ID, Total: decimal.RequireFromString(total), Status: orderentity.StatusPending,
			ShippingName: "Alice", ShippingAddress: "1 Main St", ShippingCity: "Town",
			ShippingZip: "12345", ShippingCountry: "Country",
		}
		require.NoError(t, db.Omit("User", "Items").Create(o).Error)
	}

	repo := NewStatsGorm(db)
	ctx := context.Background()

	orders, err := repo.CountOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), orders)

	products, err := repo.CountProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), products)

	totals, err := repo.OrderTotals(ctx)
	require.NoError(t, err)
	require.Len(t, totals, 2)
	sum := totals[0].Add(totals[1])
	assert.True(t, decimal.RequireFromString("105.47").Equal(sum), sum.String())
}
