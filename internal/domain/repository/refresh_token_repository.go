package repository

import (
	"context"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for refresh token persistence.
var (
	// ErrRefreshTokenNotFound is returned when a refresh token is not found.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	// ErrRefreshTokenRevoked is returned when a conditional revoke finds the token already revoked.
	ErrRefreshTokenRevoked = errors.New("refresh token already revoked")
)

// RefreshTokenRepository defines the interface for refresh credential persistence.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token, representing a session.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves a refresh token record by its stored hash,
	// regardless of expiry or revocation.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// RevokeRefreshToken revokes a live token. It returns ErrRefreshTokenRevoked when the
	// token was already revoked, which makes rotation single-use under concurrency.
	RevokeRefreshToken(ctx context.Context, id uuid.UUID) error

	// RevokeRefreshTokenByHash revokes the token if it is live. Revoking an already revoked
	// or unknown token is not an error.
	RevokeRefreshTokenByHash(ctx context.Context, tokenHash string) error

	// FindActiveRefreshTokens returns the subject's unrevoked, unexpired tokens, oldest first.
	FindActiveRefreshTokens(ctx context.Context, subject entity.Subject) ([]*entity.RefreshToken, error)
}
