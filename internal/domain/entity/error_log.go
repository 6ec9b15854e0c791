package entity

import (
	"time"

	"github.com/google/uuid"
)

// ErrorLog is an append-only record of an unexpected failure.
type ErrorLog struct {
	ID        uuid.UUID
	Title     string // Operation that failed, e.g. "Error in the registration service".
	Summary   string // Raw error text.
	Source    string // "back" or "front".
	CreatedAt time.Time
}
