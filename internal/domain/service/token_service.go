package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenService defines the interface for validating the JWTs that carry the
// acting identity. Account management and token issuance live with the auth
// collaborator; this service only needs to verify and read tokens.
type TokenService interface {
	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}
