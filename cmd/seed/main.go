package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"loomspace_backend/internal/app/seed"
	"loomspace_backend/internal/platform/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info(".env not found; using system environment variables")
	}
	if err := run(); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
	slog.Info("seed ok")
}

func run() error {
	cfg := db.LoadConfigFromEnv()
	// シード前にスキーマを必ず作成する
	cfg.RunMigrations = true
	gdb, err := db.Open(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close(gdb) }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	return seed.Run(ctx, gdb)
}
