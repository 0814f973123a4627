package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenMinter signs and validates session tokens. The secret is injected
// from config instead of read from the environment at import time.
type TokenMinter struct {
	key []byte
	ttl time.Duration
}

func NewTokenMinter(secret string, ttl time.Duration) *TokenMinter {
	return &TokenMinter{key: []byte(secret), ttl: ttl}
}

func (m *TokenMinter) CreateToken(userID uuid.UUID) (string, error) {
	claims := &Claims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.key)
}

func (m *TokenMinter) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return m.key, nil
	})
	if err != nil || !token.Valid {
		return nil, err
	}
	return claims, nil
}
