package service

import (
	"context"

	"portfolio/internal/domain/entity"
)

// AuthMailer sends the account emails of the authentication flows.
type AuthMailer interface {
	// SendVerification emails the link that confirms the address.
	SendVerification(ctx context.Context, user *entity.User, link string) error

	// SendPasswordReset emails the short-lived password reset link.
	SendPasswordReset(ctx context.Context, user *entity.User, link string) error
}
