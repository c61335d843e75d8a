package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"loomspace_backend/internal/feature/orders/domain/entity"
)

// OrderRepository abstracts order persistence.
type OrderRepository interface {
	// ProductPrices returns the current unit price of each known product id.
	// Unknown ids are absent from the map.
	ProductPrices(ctx context.Context, productIDs []string) (map[string]decimal.Decimal, error)
	// Create inserts the order and its items in one transaction.
	Create(ctx context.Context, o *entity.Order) error
	// ListByUser returns the user's orders newest first, items joined with product.
	ListByUser(ctx context.Context, userID string) ([]entity.Order, error)
	// ListAll returns all orders newest first with user and item/product joins.
	// A non-empty status restricts the result to that status.
	ListAll(ctx context.Context, status entity.Status) ([]entity.Order, error)
	// UpdateStatus sets the status and returns the updated order with its items.
	UpdateStatus(ctx context.Context, id string, status entity.Status) (*entity.Order, error)
}

// orderUsecase implements the order operations.
type orderUsecase struct {
	orders OrderRepository
}

// NewOrderUsecase creates a new orderUsecase.
func NewOrderUsecase(orders OrderRepository) *orderUsecase {
	return &orderUsecase{orders: orders}
}

// PlaceOrder prices every line from the database, computes the total and stores
// the order as PENDING. A client-submitted price that differs is replaced.
func (u *orderUsecase) PlaceOrder(ctx context.Context, userID string, lines []entity.LineRequest, ship entity.ShippingDetails) (*entity.Order, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if len(lines) == 0 {
		return nil, ErrNoItems
	}
	if err := validateShipping(ship); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		if l.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		ids = append(ids, l.ProductID)
	}

	prices, err := u.orders.ProductPrices(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to look up prices: %w", err)
	}

	order := &entity.Order{
		UserID:          userID,
		Status:          entity.StatusPending,
		ShippingName:    ship.Name,
		ShippingAddress: ship.Address,
		ShippingCity:    ship.City,
		ShippingZip:     ship.Zip,
		ShippingCountry: ship.Country,
		Items:           make([]entity.OrderItem, 0, len(lines)),
	}
	total := decimal.Zero
	for _, l := range lines {
		price, ok := prices[l.ProductID]
		if !ok {
			return nil, ErrUnknownProduct.Wrap(fmt.Errorf("product %q", l.ProductID))
		}
		if l.Price != nil && !l.Price.Equal(price) {
			slog.Warn("order item price corrected",
				"user_id", userID,
				"product_id", l.ProductID,
				"client_price", l.Price.String(),
				"price", price.String(),
			)
		}
		item := entity.OrderItem{ProductID: l.ProductID, Quantity: l.Quantity, Price: price}
		total = total.Add(item.Subtotal())
		order.Items = append(order.Items, item)
	}
	order.Total = total

	if err := u.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	slog.Info("order placed", "order_id", order.ID, "user_id", userID, "total", total.String(), "items", len(order.Items))
	return order, nil
}

// MyOrders returns the caller's order history.
func (u *orderUsecase) MyOrders(ctx context.Context, userID string) ([]entity.Order, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	return u.orders.ListByUser(ctx, userID)
}

// AllOrders returns every order, optionally only those with status.
func (u *orderUsecase) AllOrders(ctx context.Context, status entity.Status) ([]entity.Order, error) {
	if status != "" && !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return u.orders.ListAll(ctx, status)
}

// UpdateStatus sets an order's status. Any status may follow any other.
func (u *orderUsecase) UpdateStatus(ctx context.Context, id string, status entity.Status) (*entity.Order, error) {
	if status == "" {
		return nil, ErrStatusRequired
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return u.orders.UpdateStatus(ctx, id, status)
}

func validateShipping(s entity.ShippingDetails) error {
	for _, v := range []string{s.Name, s.Address, s.City, s.Zip, s.Country} {
		if strings.TrimSpace(v) == "" {
			return ErrShippingIncomplete
		}
	}
	return nil
}
