package usecase

import (
	"context"

	"portfolio/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// SubmitEmailInput is a message sent through one of the contact forms.
type SubmitEmailInput struct {
	Type         entity.EmailType
	Name         string
	Email        string
	TimeZone     string
	Message      string
	ArticleTitle string
	ArticleLink  string
	ArticleImage string
}

// SubmitEmailOutput reports the stored message and its delivery state.
type SubmitEmailOutput struct {
	ID     uuid.UUID          `json:"id"`
	Status entity.EmailStatus `json:"status"`
}

// FrontErrorInput is an error reported by the web front-end.
type FrontErrorInput struct {
	Title   string
	Summary string
}

// RetryableError marks a failure that a message queue should redeliver.
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string {
	return "retryable: " + e.Err.Error()
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether err, or any error it wraps, is a RetryableError.
func IsRetryable(err error) bool {
	var re *RetryableError

	return errors.As(err, &re)
}

// EmailUsecase accepts contact form messages and delivers their replies.
type EmailUsecase interface {
	// SubmitEmail stores the message and hands it to the mail worker,
	// or sends it inline when no queue is configured.
	SubmitEmail(ctx context.Context, input *SubmitEmailInput) (*SubmitEmailOutput, error)
	// DeliverEmail sends the replies for a stored message. Store failures
	// are returned as RetryableError; anything else is final.
	DeliverEmail(ctx context.Context, id uuid.UUID) error
	// LogFrontError records an error reported by the front-end.
	LogFrontError(ctx context.Context, input *FrontErrorInput)
}
