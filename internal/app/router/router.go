// Package router wires the HTTP routes of the API.
package router

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "loomspace_backend/internal/feature/auth/transport/handler"
	cataloghandler "loomspace_backend/internal/feature/catalog/transport/handler"
	dashboardhandler "loomspace_backend/internal/feature/dashboard/transport/handler"
	orderhandler "loomspace_backend/internal/feature/orders/transport/handler"
	orderdto "loomspace_backend/internal/feature/orders/transport/http/dto"
	platformhandler "loomspace_backend/internal/platform/http/handler"
	jwtmw "loomspace_backend/internal/platform/jwt"
	"loomspace_backend/internal/shared/ratelimiter"
)

// Handlers groups every feature handler mounted by NewRouter.
type Handlers struct {
	Auth       *authhandler.AuthHandler
	Users      *authhandler.UserHandler
	Products   *cataloghandler.ProductHandler
	Categories *cataloghandler.CategoryHandler
	Orders     *orderhandler.OrderHandler
	Dashboard  *dashboardhandler.DashboardHandler
	Health     *platformhandler.HealthHandler
}

// Options configures the middleware of the router.
type Options struct {
	JWTSecret string
	// AllowedOrigins is the CORS allow list. Empty allows any origin.
	AllowedOrigins []string
	// AuthLimiter throttles /auth/login and /auth/register per client IP. Nil disables it.
	AuthLimiter ratelimiter.RateLimiterInterface
	// TrustedProxies are the proxies allowed to set X-Forwarded-For. Empty trusts none.
	TrustedProxies []string
}

// NewRouter builds the gin engine with logging, recovery, CORS and every route.
func NewRouter(opts Options, h Handlers) (*gin.Engine, error) {
	if err := orderdto.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	r := gin.Default()
	// 空のときは RemoteAddr をそのままクライアントIPとする
	if err := r.SetTrustedProxies(opts.TrustedProxies); err != nil {
		return nil, fmt.Errorf("set trusted proxies: %w", err)
	}
	r.Use(cors.New(corsConfig(opts.AllowedOrigins)))

	// 認証不要
	// 導通確認用
	r.GET("/health", h.Health.Health)
	r.HEAD("/health", h.Health.Health)

	auth := r.Group("/auth")
	if opts.AuthLimiter != nil {
		auth.Use(ratelimiter.Middleware(opts.AuthLimiter))
	}
	{
		// 新規ユーザー登録
		auth.POST("/register", h.Auth.Register)
		// ログイン（JWT 発行）
		auth.POST("/login", h.Auth.Login)
	}

	r.GET("/products", h.Products.List)
	r.GET("/products/:slug", h.Products.GetBySlug)
	r.GET("/categories", h.Categories.List)

	// 認証必須のルート
	user := r.Group("/")
	user.Use(jwtmw.AuthRequired(opts.JWTSecret))
	{
		user.POST("/products/:slug/reviews", h.Products.CreateReview)
		user.POST("/orders", h.Orders.Create)
		user.GET("/orders/my-orders", h.Orders.MyOrders)
	}

	// 管理者のみ
	admin := r.Group("/")
	admin.Use(jwtmw.AuthRequired(opts.JWTSecret), jwtmw.RequireAdmin())
	{
		admin.POST("/products", h.Products.Create)
		admin.PUT("/products/:id", h.Products.Update)
		admin.DELETE("/products/:id", h.Products.Delete)

		admin.POST("/categories", h.Categories.Create)
		admin.PUT("/categories/:id", h.Categories.Update)
		admin.DELETE("/categories/:id", h.Categories.Delete)

		admin.GET("/admin/orders", h.Orders.List)
		admin.PUT("/admin/orders/:id", h.Orders.UpdateStatus)
		admin.GET("/admin/dashboard", h.Dashboard.Stats)
		admin.GET("/admin/users", h.Users.List)
		admin.DELETE("/admin/users/:id", h.Users.Delete)
	}

	return r, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
