package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfigFromEnv は環境変数からRedis設定が読み込まれることを検証します。
func TestLoadConfigFromEnv(t *testing.T) {
	tests := []struct {
		name        string
		ttl         string
		expectedTTL time.Duration
	}{
		{"custom ttl", "10m", 10 * time.Minute},
		{"unset ttl", "", DefaultCacheTTL},
		{"invalid ttl", "soon", DefaultCacheTTL},
		{"negative ttl", "-1m", DefaultCacheTTL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("REDIS_HOST", "cache")
			t.Setenv("REDIS_PORT", "6380")
			t.Setenv("REDIS_PASSWORD", "pw")
			t.Setenv("CACHE_TTL", tt.ttl)

			cfg := LoadConfigFromEnv()

			assert.Equal(t, "cache", cfg.Host)
			assert.Equal(t, "pw", cfg.Password)
			assert.Equal(t, "cache:6380", cfg.Addr())
			assert.Equal(t, tt.expectedTTL, cfg.CacheTTL)
		})
	}
}

// TestConfig_Addr_DefaultPort はポート未指定時に6379が使われることを検証します。
func TestConfig_Addr_DefaultPort(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "localhost:6379", Config{Host: "localhost"}.Addr())
}

// TestNewRedisClient_NotConfigured はホスト未設定時に接続を試みずエラーを返すことを検証します。
func TestNewRedisClient_NotConfigured(t *testing.T) {
	t.Parallel()

	rdb, err := NewRedisClient(context.Background(), Config{})

	require.ErrorIs(t, err, ErrNotConfigured)
	assert.Nil(t, rdb)
}
