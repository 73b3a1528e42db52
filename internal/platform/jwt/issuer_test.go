package jwtmw

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TestNewIssuer は各種設定でIssuerが正しく生成されることを検証します。
func TestNewIssuer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		secret string
		ttl    time.Duration
	}{
		{"standard config", "my-secret-key", 30 * time.Minute},
		{"long ttl", "secret", 24 * time.Hour},
		{"short ttl", "s", time.Minute},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			iss := NewIssuer(tt.secret, tt.ttl)

			if iss == nil {
				t.Fatal("expected issuer to be non-nil")
			}
			if string(iss.secret) != tt.secret {
				t.Errorf("expected secret %q, got %q", tt.secret, string(iss.secret))
			}
			if iss.ttl != tt.ttl {
				t.Errorf("expected ttl %v, got %v", tt.ttl, iss.ttl)
			}
		})
	}
}

// TestIssuer_Issue は発行されたトークンが有効で正しいクレームを含むことを検証します。
func TestIssuer_Issue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
	}{
		{"basic user", "alice"},
		{"user with symbols", "user_2+tag"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			iss := NewIssuer("test-secret", 30*time.Minute)
			tokenStr, err := iss.Issue(tt.username)

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tokenStr == "" {
				t.Fatal("expected non-empty token")
			}

			// Verify the token can be parsed
			token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
				return []byte("test-secret"), nil
			})
			if err != nil {
				t.Fatalf("failed to parse token: %v", err)
			}
			if !token.Valid {
				t.Error("expected token to be valid")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				t.Fatal("expected MapClaims")
			}

			if sub, ok := claims["sub"].(string); !ok || sub != tt.username {
				t.Errorf("expected sub %q, got %v", tt.username, claims["sub"])
			}
			if _, ok := claims["exp"]; !ok {
				t.Error("expected exp claim to be set")
			}
			if _, ok := claims["iat"]; !ok {
				t.Error("expected iat claim to be set")
			}
		})
	}
}

// TestIssuer_Issue_SigningMethod はトークンがHS256署名アルゴリズムで署名されていることを検証します。
func TestIssuer_Issue_SigningMethod(t *testing.T) {
	t.Parallel()

	iss := NewIssuer("test-secret", 30*time.Minute)
	tokenStr, err := iss.Issue("alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := jwt.Parse(tokenStr, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			t.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	if !token.Valid {
		t.Error("expected token to be valid")
	}
}

// TestIssuer_Issue_Expiration はexp・iatクレームが正しい時刻範囲内であることを検証します。
func TestIssuer_Issue_Expiration(t *testing.T) {
	t.Parallel()

	ttl := 30 * time.Minute
	iss := NewIssuer("test-secret", ttl)

	before := time.Now().Truncate(time.Second)
	tokenStr, err := iss.Issue("alice")
	after := time.Now().Truncate(time.Second).Add(time.Second) // Add 1 second buffer

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, _ := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})

	claims := token.Claims.(jwt.MapClaims)

	expUnix := int64(claims["exp"].(float64))
	if expUnix < before.Add(ttl).Unix() || expUnix > after.Add(ttl).Unix() {
		t.Errorf("exp %d not in expected range [%d, %d]", expUnix, before.Add(ttl).Unix(), after.Add(ttl).Unix())
	}

	iatUnix := int64(claims["iat"].(float64))
	if iatUnix < before.Unix() || iatUnix > after.Unix() {
		t.Errorf("iat %d not in expected range [%d, %d]", iatUnix, before.Unix(), after.Unix())
	}
}

// TestIssuer_Issue_BackdatedClock は時計を巻き戻して発行したトークンが既に期限切れであることを検証します。
func TestIssuer_Issue_BackdatedClock(t *testing.T) {
	t.Parallel()

	iss := NewIssuer("test-secret", 30*time.Minute)
	iss.now = func() time.Time { return time.Now().Add(-time.Hour) }

	tokenStr, err := iss.Issue("alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Parsing with default validation must reject the expired token
	_, err = jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err == nil {
		t.Error("expected expired token to fail validation")
	}
}

// TestIssuer_Issue_DifferentUsersProduceDifferentTokens は異なるユーザーに対して異なるトークンが生成されることを検証します。
func TestIssuer_Issue_DifferentUsersProduceDifferentTokens(t *testing.T) {
	t.Parallel()

	iss := NewIssuer("test-secret", 30*time.Minute)

	token1, _ := iss.Issue("alice")
	token2, _ := iss.Issue("bob")

	if token1 == token2 {
		t.Error("expected different tokens for different users")
	}
}
