// Package ratelimiter は固定ウィンドウ方式のリクエスト頻度制限を提供します。
package ratelimiter

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Limiter は、キー単位で操作の頻度を制限するインターフェースです。
type Limiter interface {
	Allow(key string) bool
}

// FixedWindow は固定ウィンドウ方式でキー単位の頻度を制限します。
// ログインのような認証エンドポイントの総当たり緩和に使用します。
type FixedWindow struct {
	limit    int           // ウィンドウあたりの上限
	interval time.Duration // どの単位でリセットするか

	mu        sync.Mutex
	windows   map[string]*window
	lastSweep time.Time
}

type window struct {
	count int
	start time.Time
}

var _ Limiter = (*FixedWindow)(nil)

// NewFixedWindow は新しいFixedWindowのインスタンスを生成します。
func NewFixedWindow(limit int, interval time.Duration) *FixedWindow {
	return &FixedWindow{
		limit:     limit,
		interval:  interval,
		windows:   make(map[string]*window),
		lastSweep: time.Now(),
	}
}

// Allow はキーの現在ウィンドウ内の呼び出しを数え、上限以内ならtrueを返します。
func (rl *FixedWindow) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	rl.sweep(now)

	w, ok := rl.windows[key]
	// interval を過ぎたらカウントリセット
	if !ok || now.Sub(w.start) >= rl.interval {
		rl.windows[key] = &window{count: 1, start: now}
		return true
	}

	w.count++
	return w.count <= rl.limit
}

// sweep は経過済みウィンドウのエントリを破棄します。
// 一度でもアクセスしたキーが残り続けてマップが際限なく成長しないようにします。
// 呼び出し側がミューテックスを保持している前提です。
func (rl *FixedWindow) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.interval {
		return
	}
	for key, w := range rl.windows {
		if now.Sub(w.start) >= rl.interval {
			delete(rl.windows, key)
		}
	}
	rl.lastSweep = now
}

// Middleware は上限を超えたリクエストを429で拒否するGinミドルウェアを返します。
// クライアントIPをキーとして使用します。
func Middleware(rl Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
