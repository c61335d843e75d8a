// Package entity defines the domain models for the catalog feature.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	authentity "loomspace_backend/internal/feature/auth/domain/entity"
)

// Category groups products in the storefront (Men, Women, Oversized, ...).
type Category struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Name      string    `gorm:"size:255;not null;uniqueIndex"`
	Slug      string    `gorm:"size:255;not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BeforeCreate assigns a UUID when the caller did not set one.
func (c *Category) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Product is a T-shirt offered in the store.
type Product struct {
	ID          string          `gorm:"primaryKey;size:36"`
	Name        string          `gorm:"size:255;not null"`
	Slug        string          `gorm:"size:255;not null;uniqueIndex"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CategoryID  string          `gorm:"size:36;not null;index"`
	Category    Category        `gorm:"foreignKey:CategoryID"`
	// Images is the ordered list of image URLs; the first one is the cover.
	Images    []string  `gorm:"serializer:json;type:text"`
	Variants  []Variant `gorm:"foreignKey:ProductID"`
	Reviews   []Review  `gorm:"foreignKey:ProductID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BeforeCreate assigns a UUID when the caller did not set one.
func (p *Product) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Variant is a size/color combination of a product with its stock level.
type Variant struct {
	ID        string `gorm:"primaryKey;size:36"`
	ProductID string `gorm:"size:36;not null;index"`
	Size      string `gorm:"size:16;not null"`
	Color     string `gorm:"size:64;not null"`
	Stock     int    `gorm:"not null;default:0"`
}

// BeforeCreate assigns a UUID when the caller did not set one.
func (v *Variant) BeforeCreate(*gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

// Review is a customer's rating of a product.
type Review struct {
	ID        string          `gorm:"primaryKey;size:36"`
	ProductID string          `gorm:"size:36;not null;index"`
	UserID    string          `gorm:"size:36;not null;index"`
	User      authentity.User `gorm:"foreignKey:UserID"`
	Rating    int             `gorm:"not null"`
	Comment   string          `gorm:"type:text"`
	CreatedAt time.Time
}

// BeforeCreate assigns a UUID when the caller did not set one.
func (r *Review) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// ProductFilter narrows a product listing. Zero values mean "no filter".
type ProductFilter struct {
	// CategorySlug matches the product's category slug exactly.
	CategorySlug string
	// Search matches name or description, case-insensitively, as a substring.
	Search string
}

// ProductChanges holds the fields of a partial product update.
// A nil field is left unchanged.
type ProductChanges struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	CategoryID  *string
	Images      []string
}
