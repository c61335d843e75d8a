// Package entity defines the domain models for the orders feature.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	authentity "loomspace_backend/internal/feature/auth/domain/entity"
	catalogentity "loomspace_backend/internal/feature/catalog/domain/entity"
)

// Status is the fulfilment state of an order.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusShipped    Status = "SHIPPED"
	StatusDelivered  Status = "DELIVERED"
	StatusCancelled  Status = "CANCELLED"
)

// Statuses lists every recognized order status.
var Statuses = []Status{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled}

// Valid reports whether s is one of the recognized statuses.
func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Order is a customer's purchase. Total is fixed when the order is placed.
type Order struct {
	ID              string          `gorm:"primaryKey;size:36"`
	UserID          string          `gorm:"size:36;not null;index"`
	User            authentity.User `gorm:"foreignKey:UserID"`
	Total           decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status          Status          `gorm:"size:16;not null;default:PENDING;index"`
	ShippingName    string          `gorm:"size:255;not null"`
	ShippingAddress string          `gorm:"size:255;not null"`
	ShippingCity    string          `gorm:"size:255;not null"`
	ShippingZip     string          `gorm:"size:32;not null"`
	ShippingCountry string          `gorm:"size:255;not null"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time       `gorm:"index"`
	UpdatedAt       time.Time
}

// BeforeCreate assigns a UUID when the caller did not set one.
func (o *Order) BeforeCreate(*gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// OrderItem is one line of an order. Price is the unit price charged.
type OrderItem struct {
	ID        string                `gorm:"primaryKey;size:36"`
	OrderID   string                `gorm:"size:36;not null;index"`
	ProductID string                `gorm:"size:36;not null;index"`
	Product   catalogentity.Product `gorm:"foreignKey:ProductID"`
	Quantity  int                   `gorm:"not null"`
	Price     decimal.Decimal       `gorm:"type:decimal(10,2);not null"`
}

// BeforeCreate assigns a UUID when the caller did not set one.
func (i *OrderItem) BeforeCreate(*gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// Subtotal returns price × quantity for the line.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ShippingDetails is the delivery address of an order.
type ShippingDetails struct {
	Name    string
	Address string
	City    string
	Zip     string
	Country string
}

// LineRequest is one requested order line as submitted by the client.
// Price is what the client believes the unit price is; it is informational only.
type LineRequest struct {
	ProductID string
	Quantity  int
	Price     *decimal.Decimal
}
