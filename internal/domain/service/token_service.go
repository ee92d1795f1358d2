package service

import (
	"time"

	"storerating/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by an access token.
type Claims struct {
	UserID uuid.UUID   `json:"-"`
	Email  string      `json:"email"`
	Role   entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for the user.
	GenerateAccessToken(user *entity.User) (string, error)

	// ValidateToken parses and verifies a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenTTL returns the configured lifetime of access tokens.
	AccessTokenTTL() time.Duration
}
