// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in to the site.
type User struct {
	ID            uuid.UUID // Application-assigned UUIDv7.
	FirstName     string    // First given name.
	SecondName    string    // Second given name, may be empty.
	FirstSurname  string    // First family name.
	SecondSurname string    // Second family name, may be empty.
	Email         string    // Unique, stored lower-cased.
	Phone         string    // Contact phone number.
	Photo         string    // Reference to the profile picture.
	PasswordHash  string    // bcrypt hash. Never leaves the service layer.
	IsVerified    bool      // Set once the emailed verification link is followed.
	CreatedAt     time.Time // Assigned by the store on insert.
	UpdatedAt     time.Time // Refreshed by the store on every update.
}

// UserSummary is the display-safe projection returned to clients.
type UserSummary struct {
	Name     string `json:"name,omitempty"`
	LastName string `json:"last_name,omitempty"`
	Photo    string `json:"photo,omitempty"`
}

// Summary returns the display-safe projection of the user.
func (u *User) Summary() *UserSummary {
	if u == nil {
		return &UserSummary{}
	}

	return &UserSummary{
		Name:     u.FirstName,
		LastName: u.FirstSurname,
		Photo:    u.Photo,
	}
}

// FullName joins the first given name and first family name.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.FirstSurname)
}

// NormalizeEmail lower-cases and trims an address so that uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
