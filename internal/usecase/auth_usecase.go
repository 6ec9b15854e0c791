// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"portfolio/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	FirstName     string
	SecondName    string
	FirstSurname  string
	SecondSurname string
	Email         string
	Phone         string
	Password      string
	Photo         string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ChangePasswordInput carries the reset token and the replacement password.
type ChangePasswordInput struct {
	Token    string
	Password string
}

// --- Output DTOs ---

// AuthResult is the outcome of an auth operation as shown to the client.
type AuthResult struct {
	Status  int                 `json:"status"`
	Message string              `json:"message"`
	Token   string              `json:"token,omitempty"`
	User    *entity.UserSummary `json:"user"`

	// RefreshToken is set when the caller must store a new session cookie.
	RefreshToken     string    `json:"-"`
	RefreshExpiresAt time.Time `json:"-"`
	// ClearSession asks the caller to drop the session cookie.
	ClearSession bool `json:"-"`
}

// AuthUsecase defines the account and session operations.
// Business failures are returned as domainerrors.AppError values.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthResult, error)
	// VerifyEmail returns the front-end URL to redirect the browser to.
	VerifyEmail(ctx context.Context, email, token string) string
	Login(ctx context.Context, input *LoginInput) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
	// Logout only retires a session that belongs to userID.
	Logout(ctx context.Context, userID uuid.UUID, refreshToken string) (*AuthResult, error)
	ForgotPassword(ctx context.Context, email string) (*AuthResult, error)
	// ResetPassword returns the front-end URL to redirect the browser to.
	ResetPassword(ctx context.Context, token string) string
	ChangePassword(ctx context.Context, input *ChangePasswordInput) (*AuthResult, error)
	// PurgeExpiredSessions removes expired refresh tokens and reports how many were removed.
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}
