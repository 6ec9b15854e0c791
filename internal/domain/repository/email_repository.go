package repository

import (
	"context"

	"portfolio/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrEmailNotFound is returned when an inbox message does not exist.
var ErrEmailNotFound = errors.New("email not found")

// EmailRepository persists messages received through the contact forms.
type EmailRepository interface {
	Create(ctx context.Context, email *entity.InboxEmail) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.InboxEmail, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.EmailStatus) error
}
