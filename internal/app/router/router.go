package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authhandler "github.com/KoheiTanihara/Gado-back/internal/feature/auth/transport/handler"
	itemhandler "github.com/KoheiTanihara/Gado-back/internal/feature/items/transport/handler"
	"github.com/KoheiTanihara/Gado-back/internal/platform/http/handler"
	"github.com/KoheiTanihara/Gado-back/internal/shared/ratelimiter"
)

// NewRouter はアプリケーションのルーティングを構成します。
// authMW は認証必須ルートに適用するAuthRequiredミドルウェアです。
func NewRouter(authHandler *authhandler.AuthHandler, items *itemhandler.ItemHandler,
	authMW gin.HandlerFunc, db *gorm.DB) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)

	// 認証エンドポイント
	// ログインはIP単位の頻度制限で総当たりを緩和する
	loginLimiter := ratelimiter.NewFixedWindow(10, time.Minute)
	auth := r.Group("/auth")
	{
		// 新規ユーザー登録
		auth.POST("/register", authHandler.Register)
		// ログイン（トークン発行、フォームエンコード）
		auth.POST("/login", ratelimiter.Middleware(loginLimiter), authHandler.Login)
		// ログアウト（サーバー側は何も無効化しない）
		auth.POST("/logout", authHandler.Logout)
	}

	// 認証必須のルート
	// authMW によりリクエストヘッダーに Bearer トークンが必要になる
	protected := r.Group("/")
	protected.Use(authMW)
	{
		protected.GET("/", handler.Root)
		// 認証済みユーザー向けのDB導通確認
		protected.GET("/testdb", handler.DBCheck(db))

		tasks := protected.Group("/tasks")
		{
			tasks.POST("", items.Create)
			tasks.GET("", items.List)
			tasks.GET("/:id", items.Get)
			tasks.PUT("/:id", items.Update)
			tasks.DELETE("/:id", items.Delete)
		}
	}

	return r
}
