// Package model holds the GORM persistence models. They mirror the tables
// created by the goose migrations and never leave the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are UUIDv7 assigned by the application.
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName     string    `gorm:"type:varchar(100);not null"`
	SecondName    string    `gorm:"type:varchar(100)"`
	FirstSurname  string    `gorm:"type:varchar(100);not null"`
	SecondSurname string    `gorm:"type:varchar(100)"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone         string    `gorm:"type:varchar(30)"`
	Photo         string    `gorm:"type:varchar(512)"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	IsVerified    bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`

	RefreshTokens []RefreshTokenModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
