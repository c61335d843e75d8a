// Package seed loads the demo users, categories and products.
// Running it again leaves existing rows in place, except that the demo
// users get their password reset.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authentity "loomspace_backend/internal/feature/auth/domain/entity"
	"loomspace_backend/internal/feature/catalog/domain/entity"
	catalogusecase "loomspace_backend/internal/feature/catalog/usecase"
)

// DemoPassword is the password of both demo accounts.
const DemoPassword = "password123"

// Sizes are the variant sizes created for each new product.
var Sizes = []string{"S", "M", "L", "XL", "XXL"}

// Categories are the storefront categories.
var Categories = []string{"Men", "Women", "Oversized", "Printed", "Plain"}

type demoUser struct {
	email, name string
	role        authentity.Role
}

var users = []demoUser{
	{"admin@loomspace.com", "Admin User", authentity.RoleAdmin},
	{"user@loomspace.com", "Demo User", authentity.RoleCustomer},
}

type demoProduct struct {
	name, description, price, category, image string
}

var products = []demoProduct{
	{"Classic White Tee", "A timeless classic. 100% Cotton.", "29.99", "Men", "https://placehold.co/600x400/white/black?text=Classic+White+Tee"},
	{"Midnight Black Oversized", "Streetwear essential. Heavyweight cotton.", "39.99", "Oversized", "https://placehold.co/600x400/black/white?text=Midnight+Black"},
	{"Vintage Wash Grey", "Soft, lived-in feel. Vintage wash.", "34.99", "Men", "https://placehold.co/600x400/grey/white?text=Vintage+Wash"},
	{"Summer Floral Print", "Vibrant floral print for summer vibes.", "45.00", "Printed", "https://placehold.co/600x400/orange/white?text=Floral+Print"},
	{"Basic Blue Crew", "Everyday essential. Breathable fabric.", "25.00", "Plain", "https://placehold.co/600x400/blue/white?text=Basic+Blue"},
	{"Olive Green Boxy", "Boxy fit for a modern silhouette.", "32.00", "Women", "https://placehold.co/600x400/olive/white?text=Olive+Green"},
	{"Striped Sailor Tee", "Nautical stripes. 100% Organic Cotton.", "38.00", "Women", "https://placehold.co/600x400/white/blue?text=Striped+Sailor"},
	{"Graphic Art Tee", "Limited edition graphic print.", "49.99", "Printed", "https://placehold.co/600x400/purple/white?text=Graphic+Art"},
	{"Beige Lounge Tee", "Perfect for lounging. Ultra soft.", "28.00", "Plain", "https://placehold.co/600x400/beige/black?text=Beige+Lounge"},
	{"Charcoal Heavyweight", "Durable and stylish. 280gsm.", "42.00", "Oversized", "https://placehold.co/600x400/333333/white?text=Charcoal+Heavy"},
}

// Run seeds db inside one transaction.
func Run(ctx context.Context, db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range users {
			row := &authentity.User{Email: u.email, Name: u.name, Password: string(hash), Role: u.role}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "email"}},
				DoUpdates: clause.AssignmentColumns([]string{"password"}),
			}).Create(row).Error
			if err != nil {
				return fmt.Errorf("upsert user %s: %w", u.email, err)
			}
		}

		categoryIDs := make(map[string]string, len(Categories))
		for _, name := range Categories {
			var c entity.Category
			err := tx.Where(entity.Category{Name: name}).
				Attrs(entity.Category{Slug: catalogusecase.Slugify(name)}).
				FirstOrCreate(&c).Error
			if err != nil {
				return fmt.Errorf("upsert category %s: %w", name, err)
			}
			categoryIDs[name] = c.ID
		}

		created := 0
		for _, p := range products {
			slug := catalogusecase.Slugify(p.name)
			var n int64
			if err := tx.Model(&entity.Product{}).Where("slug = ?", slug).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				continue
			}
			product := &entity.Product{
				Name:        p.name,
				Slug:        slug,
				Description: p.description,
				Price:       decimal.RequireFromString(p.price),
				CategoryID:  categoryIDs[p.category],
				Images:      []string{p.image},
			}
			if err := tx.Omit(clause.Associations).Create(product).Error; err != nil {
				return fmt.Errorf("create product %s: %w", p.name, err)
			}
			variants := make([]entity.Variant, 0, len(Sizes))
			for _, size := range Sizes {
				variants = append(variants, entity.Variant{ProductID: product.ID, Size: size, Color: "Default", Stock: rand.IntN(50)})
			}
			if err := tx.Create(&variants).Error; err != nil {
				return fmt.Errorf("create variants for %s: %w", p.name, err)
			}
			created++
		}

		slog.Info("seed finished", "users", len(users), "categories", len(Categories), "products_created", created)
		return nil
	})
}
