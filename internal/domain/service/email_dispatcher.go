package service

import (
	"context"

	"portfolio/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrUnknownEmailType is returned when no email variant exists for a type tag.
var ErrUnknownEmailType = errors.New("unknown email type")

// EmailDispatcher builds the variant for an inbox message and sends its replies.
type EmailDispatcher interface {
	// Dispatch returns ErrUnknownEmailType when the tag has no variant.
	Dispatch(ctx context.Context, email *entity.InboxEmail) error
}
