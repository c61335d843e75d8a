// Package db opens the GORM connection used by every adapter.
package db

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Supported values of DB_DRIVER.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	defaultConnectTimeout = 60 * time.Second
	retryInterval         = 3 * time.Second
)

// Config holds the database connection settings.
type Config struct {
	Driver   string
	User     string
	Password string
	Name     string
	Host     string
	Port     string
	SSLMode  string
	// InstanceName is the Cloud SQL instance connection name. When set, MySQL connects
	// through the /cloudsql unix socket instead of Host/Port.
	InstanceName string
	// Path is the SQLite database file.
	Path          string
	RunMigrations bool
	// MaxOpenConns limits the pool; zero leaves the driver default.
	MaxOpenConns int
}

// LoadConfigFromEnv reads the database settings from environment variables.
func LoadConfigFromEnv() Config {
	return Config{
		Driver:        getEnv("DB_DRIVER", DriverMySQL),
		User:          os.Getenv("DB_USER"),
		Password:      os.Getenv("DB_PASSWORD"),
		Name:          os.Getenv("DB_NAME"),
		Host:          getEnv("DB_HOST", "localhost"),
		Port:          os.Getenv("DB_PORT"),
		SSLMode:       getEnv("DB_SSLMODE", "disable"),
		InstanceName:  os.Getenv("INSTANCE_CONNECTION_NAME"),
		Path:          getEnv("DB_PATH", "./loomspace.db"),
		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
	}
}

// BuildDSN returns the data source name for cfg.Driver.
func BuildDSN(cfg Config) string {
	switch cfg.Driver {
	case DriverPostgres:
		port := cfg.Port
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			cfg.Host, cfg.User, cfg.Password, cfg.Name, port, cfg.SSLMode)
	case DriverSQLite:
		return cfg.Path
	default:
		if cfg.InstanceName != "" {
			return fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
				cfg.User, cfg.Password, cfg.InstanceName, cfg.Name)
		}
		port := cfg.Port
		if port == "" {
			port = "3306"
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.User, cfg.Password, cfg.Host, port, cfg.Name)
	}
}

// Opener opens a GORM connection for a DSN.
type Opener func(dsn string) (*gorm.DB, error)

// gormConfig is shared by every driver. TranslateError turns driver-specific duplicate
// key and foreign key errors into gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated.
func gormConfig() *gorm.Config {
	return &gorm.Config{TranslateError: true}
}

// OpenerFor returns the Opener for a driver name.
func OpenerFor(driver string) (Opener, error) {
	switch driver {
	case DriverMySQL, "":
		return func(dsn string) (*gorm.DB, error) { return gorm.Open(gmysql.Open(dsn), gormConfig()) }, nil
	case DriverPostgres:
		return func(dsn string) (*gorm.DB, error) { return gorm.Open(postgres.Open(dsn), gormConfig()) }, nil
	case DriverSQLite:
		return func(dsn string) (*gorm.DB, error) { return gorm.Open(sqlite.Open(dsn), gormConfig()) }, nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

// ConnectWithRetry calls open until it succeeds or timeout elapses.
// Containers often start before the database accepts connections.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %v: %w", timeout, err)
		}
		slog.Warn("DB connect failed, retrying", "error", err, "retry_in", retryInterval)
		time.Sleep(retryInterval)
	}
}

// Open connects with cfg and runs migrations when cfg.RunMigrations is set.
func Open(cfg Config) (*gorm.DB, error) {
	open, err := OpenerFor(cfg.Driver)
	if err != nil {
		return nil, err
	}
	db, err := ConnectWithRetry(BuildDSN(cfg), defaultConnectTimeout, open)
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.RunMigrations {
		if err := Migrate(db); err != nil {
			return nil, err
		}
		slog.Info("database migrations applied", "driver", cfg.Driver)
	}
	return db, nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	if db == nil {
		return errors.New("db is nil")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
