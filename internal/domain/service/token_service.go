package service

import (
	"time"

	"loyalty/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	Role       string     `json:"role"`
	Phone      string     `json:"phone,omitempty"`
	Username   string     `json:"username,omitempty"`
	CustomerID *uuid.UUID `json:"customerId,omitempty"`
	DealerID   *uuid.UUID `json:"dealerId,omitempty"`
	jwt.RegisteredClaims
}

// Principal converts validated claims into the request principal.
func (c *Claims) Principal() (entity.Principal, error) {
	subjectID, err := uuid.Parse(c.Subject)
	if err != nil {
		return entity.Principal{}, err
	}

	return entity.Principal{
		SubjectID:  subjectID,
		Role:       entity.Role(c.Role),
		Username:   c.Username,
		Phone:      c.Phone,
		CustomerID: c.CustomerID,
		DealerID:   c.DealerID,
	}, nil
}

// TokenService issues and validates credentials.
type TokenService interface {
	// GenerateAccessToken signs a short-lived access token for the principal.
	GenerateAccessToken(principal entity.Principal) (string, error)

	// ValidateAccessToken parses the token and rejects malformed, wrongly signed or expired tokens.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// GenerateRefreshToken returns a new opaque refresh token and its storage hash.
	GenerateRefreshToken() (raw string, hash string, err error)

	// HashRefreshToken returns the storage hash of a raw refresh token.
	HashRefreshToken(raw string) string

	// AccessTokenDuration returns the configured lifetime of access tokens.
	AccessTokenDuration() time.Duration

	// RefreshTokenDuration returns the configured lifetime of refresh tokens.
	RefreshTokenDuration() time.Duration
}
