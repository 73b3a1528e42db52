package jwtmw

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/KoheiTanihara/Gado-back/internal/feature/auth/domain/entity"
	"github.com/KoheiTanihara/Gado-back/internal/feature/auth/usecase"
)

// ContextUserKey is the gin context key under which the resolved user is stored.
const ContextUserKey = "currentUser"

// UserResolver maps a token subject to a stored user.
// Following Go convention: the interface is defined by the consumer (this
// middleware), not the provider (auth adapters).
type UserResolver interface {
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}

// AuthRequired returns a Gin middleware that validates the bearer token and
// resolves it to a user before any protected handler runs.
//
// Every validation failure (missing header, bad signature, expired token,
// missing subject, unknown user) is reported identically: 401 with the same
// body and a WWW-Authenticate: Bearer header. Callers must not be able to
// tell these cases apart. Only a store failure is surfaced differently (500).
func AuthRequired(secret string, users UserResolver) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			unauthorized(c)
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			// Check signing algorithm (only HMAC allowed)
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return key, nil
		}, jwt.WithExpirationRequired())
		if err != nil || !token.Valid {
			unauthorized(c)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			unauthorized(c)
			return
		}

		// The parser already rejects expired tokens; expiry is re-verified
		// here so the gate does not depend on library defaults.
		exp, err := claims.GetExpirationTime()
		if err != nil || exp == nil || !exp.After(time.Now()) {
			unauthorized(c)
			return
		}

		sub, ok := claims["sub"].(string)
		if !ok || sub == "" {
			unauthorized(c)
			return
		}

		user, err := users.FindByUsername(c.Request.Context(), sub)
		if err != nil {
			if errors.Is(err, usecase.ErrUserNotFound) {
				unauthorized(c)
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// unauthorized aborts the request with the uniform 401 response.
func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
}

// CurrentUser returns the user resolved by AuthRequired for this request.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok
}
