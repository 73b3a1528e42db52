package dto

// LoginReq は/auth/loginエンドポイントのリクエストを表します。
// OAuth2パスワードフローのクライアントと互換にするため、フォームエンコードで受け取ります。
type LoginReq struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}
