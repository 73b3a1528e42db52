package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	jwtmw "github.com/KoheiTanihara/Gado-back/internal/platform/jwt"
)

// Root は認証済みユーザーへの挨拶を返す / エンドポイントを処理します。
// 認証ゲートの導通確認にも使えます。
func Root(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Hello " + user.Username})
}
