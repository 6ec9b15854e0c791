package service

import (
	"context"
)

// EmailEvent asks the mail worker to send the replies for an inbox message.
type EmailEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	EmailID   string `json:"email_id"`
	EmailType string `json:"email_type"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishEmailEvent publishes an email event for async processing
	PublishEmailEvent(ctx context.Context, event *EmailEvent) error

	// Enabled reports whether events reach a worker; when false callers process inline
	Enabled() bool

	// Close releases any resources held by the publisher
	Close() error
}
