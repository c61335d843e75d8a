// Package dto defines the JSON shapes of the order endpoints.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	catalogdto "loomspace_backend/internal/feature/catalog/transport/http/dto"
	"loomspace_backend/internal/feature/orders/domain/entity"
)

// OrderLineReq is one requested line. Price is optional and only checked against the catalog.
type OrderLineReq struct {
	ProductID string           `json:"productId" binding:"required"`
	Quantity  int              `json:"quantity" binding:"required,min=1"`
	Price     *decimal.Decimal `json:"price"`
}

// ShippingReq is the delivery address of a new order.
type ShippingReq struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	City    string `json:"city" binding:"required"`
	Zip     string `json:"zip" binding:"required"`
	Country string `json:"country" binding:"required"`
}

// CreateOrderReq is the body of POST /orders.
type CreateOrderReq struct {
	Items           []OrderLineReq `json:"items" binding:"required,min=1,dive"`
	ShippingDetails ShippingReq    `json:"shippingDetails"`
}

// Lines converts the request items.
func (r CreateOrderReq) Lines() []entity.LineRequest {
	lines := make([]entity.LineRequest, 0, len(r.Items))
	for _, it := range r.Items {
		lines = append(lines, entity.LineRequest{ProductID: it.ProductID, Quantity: it.Quantity, Price: it.Price})
	}
	return lines
}

// Shipping converts the shipping block.
func (r CreateOrderReq) Shipping() entity.ShippingDetails {
	s := r.ShippingDetails
	return entity.ShippingDetails{Name: s.Name, Address: s.Address, City: s.City, Zip: s.Zip, Country: s.Country}
}

// UpdateStatusReq is the body of PUT /admin/orders/:id.
type UpdateStatusReq struct {
	Status string `json:"status" binding:"required,orderstatus"`
}

// ListOrdersQuery is the query of GET /admin/orders.
type ListOrdersQuery struct {
	Status string `form:"status" binding:"omitempty,orderstatus"`
}

// OrderUserRes is the buyer as shown to admins.
type OrderUserRes struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OrderItemRes is one order line.
type OrderItemRes struct {
	ID        string                 `json:"id"`
	OrderID   string                 `json:"orderId"`
	ProductID string                 `json:"productId"`
	Quantity  int                    `json:"quantity"`
	Price     decimal.Decimal        `json:"price"`
	Product   *catalogdto.ProductRes `json:"product,omitempty"`
}

// OrderRes is an order as returned by the API.
type OrderRes struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	Total           decimal.Decimal `json:"total"`
	Status          string          `json:"status"`
	ShippingName    string          `json:"shippingName"`
	ShippingAddress string          `json:"shippingAddress"`
	ShippingCity    string          `json:"shippingCity"`
	ShippingZip     string          `json:"shippingZip"`
	ShippingCountry string          `json:"shippingCountry"`
	Items           []OrderItemRes  `json:"items"`
	User            *OrderUserRes   `json:"user,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// NewOrderRes converts an order. Product and user blocks are included when loaded.
func NewOrderRes(o *entity.Order) OrderRes {
	res := OrderRes{
		ID:              o.ID,
		UserID:          o.UserID,
		Total:           o.Total,
		Status:          string(o.Status),
		ShippingName:    o.ShippingName,
		ShippingAddress: o.ShippingAddress,
		ShippingCity:    o.ShippingCity,
		ShippingZip:     o.ShippingZip,
		ShippingCountry: o.ShippingCountry,
		Items:           make([]OrderItemRes, 0, len(o.Items)),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
	if o.User.ID != "" {
		res.User = &OrderUserRes{Name: o.User.Name, Email: o.User.Email}
	}
	for i := range o.Items {
		it := &o.Items[i]
		item := OrderItemRes{
			ID: it.ID, OrderID: it.OrderID, ProductID: it.ProductID, Quantity: it.Quantity, Price: it.Price,
		}
		if it.Product.ID != "" {
			p := catalogdto.NewProductRes(&it.Product)
			item.Product = &p
		}
		res.Items = append(res.Items, item)
	}
	return res
}

// NewOrderListRes converts orders, keeping order.
func NewOrderListRes(orders []entity.Order) []OrderRes {
	res := make([]OrderRes, 0, len(orders))
	for i := range orders {
		res = append(res, NewOrderRes(&orders[i]))
	}
	return res
}
