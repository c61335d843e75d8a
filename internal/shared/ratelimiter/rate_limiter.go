// Package ratelimiter limits how often a client may call an endpoint.
package ratelimiter

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"loomspace_backend/internal/platform/http/httperr"
)

// RateLimiterInterface は、キーごとに操作の頻度を制限するインターフェースです。
type RateLimiterInterface interface {
	// Allow は key の呼び出しを1回数え、許可するかどうかと、拒否時に再試行できるまでの時間を返します。
	Allow(key string) (bool, time.Duration)
}

// window はキーごとの固定ウィンドウのカウンタです。
type window struct {
	count     int
	lastReset time.Time
}

// RateLimiterは、キー（クライアントIPなど）ごとに interval あたり limit 回まで許可します。
type RateLimiter struct {
	mu        sync.Mutex
	limit     int           // interval あたりの上限
	interval  time.Duration // どの単位でリセットするか
	windows   map[string]*window
	lastSweep time.Time
	now       func() time.Time
}

var _ RateLimiterInterface = (*RateLimiter)(nil)

// NewRateLimiterは新しいRateLimiterのインスタンスを生成します。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		windows:   make(map[string]*window),
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// Allow はレートリミットの上限に達しているかを確認します。
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	w, ok := rl.windows[key]
	// interval を過ぎたらカウントリセット
	if !ok || now.Sub(w.lastReset) >= rl.interval {
		w = &window{lastReset: now}
		rl.windows[key] = w
	}

	w.count++
	if w.count > rl.limit {
		return false, rl.interval - now.Sub(w.lastReset)
	}
	return true, 0
}

// sweep は期限切れのウィンドウを interval ごとに削除します。
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.interval {
		return
	}
	for k, w := range rl.windows {
		if now.Sub(w.lastReset) >= rl.interval {
			delete(rl.windows, k)
		}
	}
	rl.lastSweep = now
}

// Middleware はクライアントIPごとに rl で制限し、超過時は429とRetry-Afterを返します。
func Middleware(rl RateLimiterInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, retryAfter := rl.Allow(c.ClientIP())
		if !ok {
			slog.Warn("[RATE LIMIT] request rejected", "client_ip", c.ClientIP(), "path", c.FullPath(), "retry_after", retryAfter)
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, httperr.ErrorResponse{Error: "too many requests"})
			return
		}
		c.Next()
	}
}
