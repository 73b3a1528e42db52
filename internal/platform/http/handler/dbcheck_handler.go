package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	jwtmw "github.com/KoheiTanihara/Gado-back/internal/platform/jwt"
)

// DBCheck は認証済みユーザー向けにストア導通を確認する /testdb エンドポイントの
// ハンドラーを返します。SELECT 1 を実行し、失敗時は500を返却します。
func DBCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := jwtmw.CurrentUser(c)
		if !ok {
			c.Header("WWW-Authenticate", "Bearer")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			return
		}

		var one int
		if err := db.WithContext(c.Request.Context()).Raw("SELECT 1").Scan(&one).Error; err != nil {
			slog.Error("database connectivity check failed", "error", err, "username", user.Username)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database connection failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Database connection successful. Hello " + user.Username})
	}
}
