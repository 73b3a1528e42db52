// Package jwtmw provides JWT issuance and the identity-resolution middleware
// that gates every protected route.
package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer creates signed access tokens for authenticated users.
// The signing key and TTL are captured once at construction and never change.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer creates a new Issuer with the provided secret and token lifetime.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue creates a signed HS256 token whose subject is the username.
// The claims carry only the subject, the absolute expiry (now + TTL) and the
// issued-at time; no roles or scopes are embedded.
func (i *Issuer) Issue(username string) (string, error) {
	now := i.now()
	claims := jwt.MapClaims{
		"sub": username,
		"exp": now.Add(i.ttl).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
