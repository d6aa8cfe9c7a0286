package api

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

type JWTServiceI interface {
	ParseToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// Pinger reports database availability for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}
