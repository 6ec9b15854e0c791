package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailType tags the kind of message a visitor sent through the site.
type EmailType string

const (
	EmailTypeGreetings   EmailType = "greetings"
	EmailTypeOpinion     EmailType = "opinion"
	EmailTypeWork        EmailType = "work"
	EmailTypeErrorReport EmailType = "error_report"
	EmailTypeProposal    EmailType = "proposal"
	EmailTypeReview      EmailType = "review"
)

// EmailStatus tracks delivery of the replies for an inbox message.
type EmailStatus string

const (
	EmailStatusQueued EmailStatus = "queued"
	EmailStatusSent   EmailStatus = "sent"
	EmailStatusFailed EmailStatus = "failed"
)

// InboxEmail is a message received from the portfolio or blog contact forms.
type InboxEmail struct {
	ID           uuid.UUID
	Type         EmailType
	SenderName   string
	SenderEmail  string
	TimeZone     string // IANA zone of the visitor, used for time-of-day greetings.
	Message      string
	ArticleTitle string // Review only.
	ArticleLink  string // Review only.
	ArticleImage string // Review only.
	IsRead       bool
	Status       EmailStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// String returns the string representation of the EmailType.
func (t EmailType) String() string {
	return string(t)
}

// IsValid checks if the EmailType is one of the known tags.
func (t EmailType) IsValid() bool {
	switch t {
	case EmailTypeGreetings, EmailTypeOpinion, EmailTypeWork,
		EmailTypeErrorReport, EmailTypeProposal, EmailTypeReview:
		return true
	default:
		return false
	}
}
