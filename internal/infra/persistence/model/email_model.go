package model

import (
	"time"

	"github.com/google/uuid"
)

// EmailModel mirrors the 'emails' table holding contact form submissions.
type EmailModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmailType    string    `gorm:"type:varchar(20);not null;index"`
	NameSender   string    `gorm:"type:varchar(200);not null"`
	EmailSender  string    `gorm:"type:varchar(255);not null"`
	TZ           string    `gorm:"column:tz;type:varchar(64)"`
	Message      string    `gorm:"type:text"`
	ArticleTitle string    `gorm:"type:varchar(255)"`
	ArticleLink  string    `gorm:"type:varchar(512)"`
	ArticleImage string    `gorm:"type:varchar(512)"`
	IsRead       bool      `gorm:"not null;default:false"`
	Status       string    `gorm:"type:varchar(10);not null;default:'queued'"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// TableName explicitly sets the table name for GORM.
func (EmailModel) TableName() string {
	return "emails"
}
