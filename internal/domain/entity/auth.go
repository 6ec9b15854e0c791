package entity

import (
	"time"

	"github.com/google/uuid"
)

// RevokeReason records why a refresh token left the active set.
type RevokeReason string

const (
	RevokeReasonRotated RevokeReason = "rotated"
	RevokeReasonLogout  RevokeReason = "logout"
)

// RefreshToken represents a long-lived, authorized user session.
// It is used to obtain a new Access Token after the old one expires, without requiring credentials.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this specific refresh token record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // Stores a SHA-256 hash of the raw refresh token for secure comparison in the database.
	ExpiresAt time.Time // The exact time when this refresh token will expire and become invalid.
	CreatedAt time.Time // Timestamp of when this session was created (i.e., when the user logged in).
}

// RevokedToken is a consumed or logged-out refresh token kept to detect replay.
type RevokedToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	Reason    RevokeReason
	RevokedAt time.Time
}
