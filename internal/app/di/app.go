package di

import (
	"database/sql"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"loomspace_backend/internal/app/router"
	authadapters "loomspace_backend/internal/feature/auth/adapters"
	authhandler "loomspace_backend/internal/feature/auth/transport/handler"
	authusecase "loomspace_backend/internal/feature/auth/usecase"
	cataloghandler "loomspace_backend/internal/feature/catalog/transport/handler"
	catalogusecase "loomspace_backend/internal/feature/catalog/usecase"
	dashboardadapters "loomspace_backend/internal/feature/dashboard/adapters"
	dashboardhandler "loomspace_backend/internal/feature/dashboard/transport/handler"
	dashboardusecase "loomspace_backend/internal/feature/dashboard/usecase"
	orderadapters "loomspace_backend/internal/feature/orders/adapters"
	orderhandler "loomspace_backend/internal/feature/orders/transport/handler"
	orderusecase "loomspace_backend/internal/feature/orders/usecase"
	platformhandler "loomspace_backend/internal/platform/http/handler"
	jwtmw "loomspace_backend/internal/platform/jwt"
)

// Deps are the shared resources the handlers are built from.
type Deps struct {
	DB    *gorm.DB
	SQLDB *sql.DB
	// Redis may be nil, in which case catalog reads are not cached.
	Redis         *redis.Client
	CacheTTL      time.Duration
	JWTSecret     string
	JWTExpiration time.Duration
}

// NewHandlers wires repositories, usecases and handlers for every feature.
func NewHandlers(d Deps) router.Handlers {
	// Repository
	userRepo := authadapters.NewUserGorm(d.DB)
	productRepo, categoryRepo := NewCatalogRepositories(d.DB, d.Redis, d.CacheTTL)
	orderRepo := orderadapters.NewOrderGorm(d.DB)
	statsRepo := dashboardadapters.NewStatsGorm(d.DB)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, jwtmw.NewGenerator(d.JWTSecret, d.JWTExpiration))
	productUC := catalogusecase.NewProductUsecase(productRepo, categoryRepo)
	categoryUC := catalogusecase.NewCategoryUsecase(categoryRepo)
	orderUC := orderusecase.NewOrderUsecase(orderRepo)
	dashboardUC := dashboardusecase.NewDashboardUsecase(statsRepo)

	// Handler
	return router.Handlers{
		Auth:       authhandler.NewAuthHandler(authUC),
		Users:      authhandler.NewUserHandler(authUC),
		Products:   cataloghandler.NewProductHandler(productUC),
		Categories: cataloghandler.NewCategoryHandler(categoryUC),
		Orders:     orderhandler.NewOrderHandler(orderUC),
		Dashboard:  dashboardhandler.NewDashboardHandler(dashboardUC),
		Health:     platformhandler.NewHealthHandler(d.SQLDB),
	}
}
