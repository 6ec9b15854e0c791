package service

import (
	"time"

	"portfolio/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// TokenKind separates the purposes a signed token can serve.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
	TokenKindVerify  TokenKind = "verify"
	TokenKindReset   TokenKind = "reset"
)

var (
	// ErrTokenInvalid is returned for malformed, tampered or wrong-kind tokens.
	ErrTokenInvalid = errors.New("token is invalid")
	// ErrTokenExpired is returned when the exp claim is in the past.
	ErrTokenExpired = errors.New("token has expired")
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID    uuid.UUID  `json:"id"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	CreatedAt *time.Time `json:"create,omitempty"`
	UpdatedAt *time.Time `json:"updated,omitempty"`
	Type      TokenKind  `json:"type"`
	jwt.RegisteredClaims
}

// IssuedRefreshToken is a freshly signed refresh token and its storage form.
type IssuedRefreshToken struct {
	Token     string
	Hash      string
	ExpiresAt time.Time
}

// TokenService signs and verifies the bearer, refresh, verification and reset tokens.
type TokenService interface {
	// GenerateAccessToken signs a bearer token embedding the user's identity.
	GenerateAccessToken(user *entity.User) (string, error)

	// GenerateRefreshToken signs a refresh token and returns its hash for storage.
	GenerateRefreshToken(user *entity.User) (*IssuedRefreshToken, error)

	// GenerateVerificationToken signs the email verification token.
	GenerateVerificationToken(user *entity.User) (string, error)

	// GeneratePasswordResetToken signs the short-lived password reset token.
	GeneratePasswordResetToken(user *entity.User) (string, error)

	// ValidateToken verifies signature, expiry and kind.
	ValidateToken(tokenString string, kind TokenKind) (*Claims, error)

	// HashToken returns the storage hash of a raw token value.
	HashToken(tokenString string) string

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
