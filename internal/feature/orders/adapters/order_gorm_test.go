package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	authentity "loomspace_backend/internal/feature/auth/domain/entity"
	catalogentity "loomspace_backend/internal/feature/catalog/domain/entity"
	"loomspace_backend/internal/feature/orders/domain/entity"
	"loomspace_backend/internal/feature/orders/usecase"
	"loomspace_backend/internal/platform/db/dbtest"
)

type orderFixture struct {
	alice, bob *authentity.User
	tee, cap   *catalogentity.Product
}

func seedOrders(t *testing.T, db *gorm.DB) orderFixture {
	t.Helper()
	f := orderFixture{
		alice: &authentity.User{Email: "alice@example.com", Name: "Alice", Password: "hash"},
		bob:   &authentity.User{Email: "bob@example.com", Name: "Bob", Password: "hash"},
	}
	require.NoError(t, db.Create(f.alice).Error)
	require.NoError(t, db.Create(f.bob).Error)
	cat := &catalogentity.Category{Name: "Men", Slug: "men"}
	require.NoError(t, db.Create(cat).Error)
	f.tee = &catalogentity.Product{Name: "Tee", Slug: "tee", Price: decimal.RequireFromString("29.99"), CategoryID: cat.ID, Images: []string{}}
	f.cap = &catalogentity.Product{Name: "Cap", Slug: "cap", Price: decimal.RequireFromString("12.00"), CategoryID: cat.ID, Images: []string{}}
	require.NoError(t, db.Create(f.tee).Error)
	require.NoError(t, db.Create(f.cap).Error)
	return f
}

func newOrder(userID string, created time.Time, items ...entity.OrderItem) *entity.Order {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return &entity.Order{
		UserID: userID, Total: total, Status: entity.StatusPending,
		ShippingName: "Test User", ShippingAddress: "123 Test St", ShippingCity: "Test City",
		ShippingZip: "12345", ShippingCountry: "Test Country",
		Items: items, CreatedAt: created,
	}
}

func TestOrderGorm_ProductPrices(t *testing.T) {
	db := dbtest.New(t)
	f := seedOrders(t, db)

	prices, err := NewOrderGorm(db).ProductPrices(context.Background(), []string{f.tee.ID, f.cap.ID, "ghost"})

	require.NoError(t, err)
	assert.Len(t, prices, 2)
	assert.True(t, decimal.RequireFromString("29.99").Equal(prices[f.tee.ID]))
	assert.True(t, decimal.RequireFromString("12").Equal(prices[f.cap.ID]))
	_, ok := prices["ghost"]
	assert.False(t, ok)
}

func TestOrderGorm_Create(t *testing.T) {
	db := dbtest.New(t)
	f := seedOrders(t, db)
	repo := NewOrderGorm(db)

	o := newOrder(f.alice.ID, time.Now(),
		entity.OrderItem{ProductID: f.tee.ID, Quantity: 2, Price: f.tee.Price},
		entity.OrderItem{ProductID: f.cap.ID, Quantity: 1, Price: f.cap.Price},
	)
	require.NoError(t, repo.Create(context.Background(), o))

	assert.Len(t, o.ID, 36)
	for _, it := range o.Items {
		assert.Equal(t, o.ID, it.OrderID)
		assert.Len(t, it.ID, 36)
	}
	var items int64
	require.NoError(t, db.Model(&entity.OrderItem{}).Where("order_id = ?", o.ID).Count(&items).Error)
	assert.EqualValues(t, 2, items)

	var products int64
	require.NoError(t, db.Model(&catalogentity.Product{}).Count(&products).Error)
	assert.EqualValues(t, 2, products, "no product rows are written by order creation")
}

func TestOrderGorm_ListByUser(t *testing.T) {
	db := dbtest.New(t)
	f := seedOrders(t, db)
	repo := NewOrderGorm(db)
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)

	older := newOrder(f.alice.ID, base, entity.OrderItem{ProductID: f.tee.ID, Quantity: 1, Price: f.tee.Price})
	newer := newOrder(f.alice.ID, base.Add(time.Minute), entity.OrderItem{ProductID: f.cap.ID, Quantity: 3, Price: f.cap.Price})
	other := newOrder(f.bob.ID, base, entity.OrderItem{ProductID: f.tee.ID, Quantity: 1, Price: f.tee.Price})
	for _, o := range []*entity.Order{older, newer, other} {
		require.NoError(t, repo.Create(ctx, o))
	}

	orders, err := repo.ListByUser(ctx, f.alice.ID)

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, newer.ID, orders[0].ID, "newest first")
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "Cap", orders[0].Items[0].Product.Name)
	assert.Equal(t, "29.99", orders[1].Total.StringFixed(2))

	none, err := repo.ListByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestOrderGorm_ListAll(t *testing.T) {
	db := dbtest.New(t)
	f := seedOrders(t, db)
	repo := NewOrderGorm(db)
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)

	a := newOrder(f.alice.ID, base, entity.OrderItem{ProductID: f.tee.ID, Quantity: 1, Price: f.tee.Price})
	b := newOrder(f.bob.ID, base.Add(time.Minute), entity.OrderItem{ProductID: f.cap.ID, Quantity: 1, Price: f.cap.Price})
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))
	_, err := repo.UpdateStatus(ctx, a.ID, entity.StatusShipped)
	require.NoError(t, err)

	orders, err := repo.ListAll(ctx, "")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, b.ID, orders[0].ID)
	assert.Equal(t, "Bob", orders[0].User.Name)
	assert.Equal(t, "bob@example.com", orders[0].User.Email)
	assert.Empty(t, orders[0].User.Password, "password hash is not loaded")
	assert.Equal(t, "Cap", orders[0].Items[0].Product.Name)

	shipped, err := repo.ListAll(ctx, entity.StatusShipped)
	require.NoError(t, err)
	require.Len(t, shipped, 1)
	assert.Equal(t, a.ID, shipped[0].ID)
}

func TestOrderGorm_UpdateStatus(t *testing.T) {
	db := dbtest.New(t)
	f := seedOrders(t, db)
	repo := NewOrderGorm(db)
	ctx := context.Background()
	o := newOrder(f.alice.ID, time.Now(), entity.OrderItem{ProductID: f.tee.ID, Quantity: 1, Price: f.tee.Price})
	require.NoError(t, repo.Create(ctx, o))

	updated, err := repo.UpdateStatus(ctx, o.ID, entity.StatusShipped)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusShipped, updated.Status)
	require.Len(t, updated.Items, 1)

	again, err := repo.UpdateStatus(ctx, o.ID, entity.StatusShipped)
	require.NoError(t, err, "same status twice is accepted")
	assert.Equal(t, entity.StatusShipped, again.Status)

	mine, err := repo.ListByUser(ctx, f.alice.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusShipped, mine[0].Status)

	_, err = repo.UpdateStatus(ctx, "missing", entity.StatusDelivered)
	assert.ErrorIs(t, err, usecase.ErrOrderNotFound)
}
