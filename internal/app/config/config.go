// Package config collects the server settings read from the environment.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Defaults applied when a variable is unset or unparsable.
const (
	DefaultPort          = "3001"
	DefaultJWTExpiration = 7 * 24 * time.Hour
	DefaultAuthRateLimit = 20
)

// Config holds the HTTP server and auth settings. Database and Redis settings
// live with their packages (platform/db, platform/redis).
type Config struct {
	Port          string
	JWTSecret     string
	JWTExpiration time.Duration
	// AllowedOrigins is the CORS allow list. Empty means any origin.
	AllowedOrigins []string
	LogLevel       slog.Level
	// AuthRateLimit is the number of login/register calls allowed per client IP
	// per minute. Zero disables the limit.
	AuthRateLimit int
	// TrustedProxies lists the proxy addresses or CIDRs whose forwarding headers
	// are believed. Empty means the remote address is always the client IP.
	TrustedProxies []string
}

// Load reads PORT, JWT_SECRET, JWT_EXPIRATION, CORS_ALLOWED_ORIGINS, LOG_LEVEL
// AUTH_RATE_LIMIT and TRUSTED_PROXIES.
func Load() Config {
	return Config{
		Port:           getEnv("PORT", DefaultPort),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTExpiration:  parseExpiration(os.Getenv("JWT_EXPIRATION")),
		AllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		LogLevel:       parseLevel(os.Getenv("LOG_LEVEL")),
		AuthRateLimit:  parseLimit(os.Getenv("AUTH_RATE_LIMIT")),
		TrustedProxies: splitList(os.Getenv("TRUSTED_PROXIES")),
	}
}

// parseExpiration accepts a Go duration ("24h") or a number of days ("7d").
func parseExpiration(s string) time.Duration {
	if s == "" {
		return DefaultJWTExpiration
	}
	if days, ok := strings.CutSuffix(s, "d"); ok {
		if d, err := time.ParseDuration(days + "h"); err == nil && d > 0 {
			return d * 24
		}
	} else if d, err := time.ParseDuration(s); err == nil && d > 0 {
		return d
	}
	slog.Warn("invalid JWT_EXPIRATION, using default", "value", s, "default", DefaultJWTExpiration)
	return DefaultJWTExpiration
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLimit(s string) int {
	if s == "" {
		return DefaultAuthRateLimit
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		slog.Warn("invalid AUTH_RATE_LIMIT, using default", "value", s, "default", DefaultAuthRateLimit)
		return DefaultAuthRateLimit
	}
	return n
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
