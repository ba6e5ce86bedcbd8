// Package auth issues and validates operator sessions for the
// dashboard: OAuth logins checked against an account allow-list, plus
// HS256 session tokens carried in a cookie or bearer header.
package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalid = errors.New("invalid session")

// Claims identifies a logged-in operator. Provider records how the
// session was established ("oauth" or "local").
type Claims struct {
	Email    string `json:"email"`
	Provider string `json:"prv,omitempty"`
	jwt.RegisteredClaims
}

var secretOverride []byte

// SetSecret installs the signing secret from configuration. An empty
// value keeps the JWT_SECRET env fallback.
func SetSecret(s string) {
	if s != "" {
		secretOverride = []byte(s)
	}
}

func secret() []byte {
	if len(secretOverride) > 0 {
		return secretOverride
	}
	s := os.Getenv("JWT_SECRET")
	if s == "" {
		s = "change-me-secret"
	}
	return []byte(s)
}

func Generate(email, provider string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email:    email,
		Provider: provider,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret())
}

func Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return secret(), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalid
	}
	if claims, ok := token.Claims.(*Claims); ok {
		return claims, nil
	}
	return nil, ErrInvalid
}
