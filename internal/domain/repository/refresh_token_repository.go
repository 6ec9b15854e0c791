package repository

import (
	"context"

	"portfolio/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for refresh token persistence.
var (
	// ErrRefreshTokenNotFound is returned when no active refresh token matches.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	// ErrRefreshTokenExpired is returned when a refresh token has expired.
	ErrRefreshTokenExpired = errors.New("refresh token has expired")
)

// RefreshTokenRepository manages the active refresh tokens and their revocation list.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token, representing a user session.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves an active refresh token by its hash.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// IsRevoked reports whether the hash is on the revocation list.
	IsRevoked(ctx context.Context, tokenHash string) (bool, error)

	// RetireRefreshToken deletes the active token and records it as revoked.
	// It returns ErrRefreshTokenNotFound when no active row was deleted, so
	// only one of several concurrent callers can retire a given token.
	// Callers run it inside TransactionManager.Execute.
	RetireRefreshToken(ctx context.Context, tokenHash string, reason entity.RevokeReason) (*entity.RefreshToken, error)

	// DeleteExpiredRefreshTokens removes expired active tokens and returns how many were removed.
	DeleteExpiredRefreshTokens(ctx context.Context) (int64, error)
}
