package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"loomspace_backend/internal/app/config"
	"loomspace_backend/internal/app/di"
	"loomspace_backend/internal/app/router"
	"loomspace_backend/internal/platform/db"
	platformredis "loomspace_backend/internal/platform/redis"
	"loomspace_backend/internal/shared/ratelimiter"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .envを読み込む
	if err := godotenv.Load(); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	cfg := config.Load()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	if err := run(cfg); err != nil {
		slog.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// db
	gdb, err := db.Open(db.LoadConfigFromEnv())
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(gdb); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}

	// Redis
	redisCfg := platformredis.LoadConfigFromEnv()
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(ctx, redisCfg); err != nil {
		slog.Warn("Redis unavailable. Running without cache.", "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// JWT_SECRETチェック
	if cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET is not set. Authenticated routes will answer 500 until it is configured.")
	}

	handlers := di.NewHandlers(di.Deps{
		DB:            gdb,
		SQLDB:         sqlDB,
		Redis:         rdb,
		CacheTTL:      redisCfg.CacheTTL,
		JWTSecret:     cfg.JWTSecret,
		JWTExpiration: cfg.JWTExpiration,
	})

	opts := router.Options{
		JWTSecret:      cfg.JWTSecret,
		AllowedOrigins: cfg.AllowedOrigins,
		TrustedProxies: cfg.TrustedProxies,
	}
	if cfg.AuthRateLimit > 0 {
		opts.AuthLimiter = ratelimiter.NewRateLimiter(cfg.AuthRateLimit, time.Minute)
	}

	// ルータ生成
	engine, err := router.NewRouter(opts, handlers)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
