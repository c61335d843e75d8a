package db

import (
	"fmt"

	"gorm.io/gorm"

	authentity "loomspace_backend/internal/feature/auth/domain/entity"
	catalogentity "loomspace_backend/internal/feature/catalog/domain/entity"
	orderentity "loomspace_backend/internal/feature/orders/domain/entity"
)

// Models lists every table owned by the service, parents before children.
func Models() []any {
	return []any{
		&authentity.User{},
		&catalogentity.Category{},
		&catalogentity.Product{},
		&catalogentity.Variant{},
		&catalogentity.Review{},
		&orderentity.Order{},
		&orderentity.OrderItem{},
	}
}

// Migrate creates or updates the schema for Models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
