// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"portfolio/config"
	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Signs access, verification and reset tokens.
	refreshSecret string        // Signs refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	verifyTTL     time.Duration // Time-to-live for email verification tokens.
	resetTTL      time.Duration // Time-to-live for password reset tokens.
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.Auth == nil {
		return nil, errors.New("auth configuration must be provided")
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     cfg.Auth.AccessTokenTTL,
		refreshTTL:    cfg.Auth.RefreshTokenTTL,
		verifyTTL:     cfg.Auth.VerificationTokenTTL,
		resetTTL:      cfg.Auth.ResetTokenTTL,
		now:           time.Now,
	}, nil
}

// GenerateAccessToken signs a bearer token carrying {id, email, phone, create, updated}.
func (s *jwtService) GenerateAccessToken(user *entity.User) (string, error) {
	return s.sign(s.identityClaims(user, service.TokenKindAccess, s.accessTTL), s.accessSecret)
}

// GenerateVerificationToken signs the token embedded in the verification link.
func (s *jwtService) GenerateVerificationToken(user *entity.User) (string, error) {
	return s.sign(s.identityClaims(user, service.TokenKindVerify, s.verifyTTL), s.accessSecret)
}

// GeneratePasswordResetToken signs the reset token. It carries no timestamps.
func (s *jwtService) GeneratePasswordResetToken(user *entity.User) (string, error) {
	claims := s.identityClaims(user, service.TokenKindReset, s.resetTTL)
	claims.CreatedAt = nil
	claims.UpdatedAt = nil

	return s.sign(claims, s.accessSecret)
}

// GenerateRefreshToken signs a refresh token; every token gets a unique jti so hashes never collide.
func (s *jwtService) GenerateRefreshToken(user *entity.User) (*service.IssuedRefreshToken, error) {
	now := s.now()
	expiresAt := now.Add(s.refreshTTL)

	claims := &service.Claims{
		UserID: user.ID,
		Type:   service.TokenKindRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	raw, err := s.sign(claims, s.refreshSecret)
	if err != nil {
		return nil, err
	}

	return &service.IssuedRefreshToken{
		Token:     raw,
		Hash:      s.HashToken(raw),
		ExpiresAt: expiresAt,
	}, nil
}

// ValidateToken verifies the signature, expiry and kind of a token.
func (s *jwtService) ValidateToken(tokenString string, kind service.TokenKind) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secretFor(kind)), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.WithStack(service.ErrTokenExpired)
		}

		return nil, errors.Wrap(service.ErrTokenInvalid, err.Error())
	}

	if !token.Valid || claims.Type != kind || claims.UserID == uuid.Nil {
		return nil, errors.WithStack(service.ErrTokenInvalid)
	}

	return claims, nil
}

// HashToken returns the hex SHA-256 of a raw token, the form kept in the database.
func (s *jwtService) HashToken(tokenString string) string {
	sum := sha256.Sum256([]byte(tokenString))

	return hex.EncodeToString(sum[:])
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) identityClaims(user *entity.User, kind service.TokenKind, ttl time.Duration) *service.Claims {
	now := s.now()
	createdAt := user.CreatedAt
	updatedAt := user.UpdatedAt

	return &service.Claims{
		UserID:    user.ID,
		Email:     user.Email,
		Phone:     user.Phone,
		CreatedAt: &createdAt,
		UpdatedAt: &updatedAt,
		Type:      kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

func (s *jwtService) secretFor(kind service.TokenKind) string {
	if kind == service.TokenKindRefresh {
		return s.refreshSecret
	}

	return s.accessSecret
}

// sign is a private helper to create a JWT with specific claims.
func (s *jwtService) sign(claims *service.Claims, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
