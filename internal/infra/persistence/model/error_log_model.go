package model

import (
	"time"

	"github.com/google/uuid"
)

// ErrorLogModel mirrors the append-only 'error_logs' table.
type ErrorLogModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Summary   string    `gorm:"type:text;not null"`
	Source    string    `gorm:"type:varchar(10);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (ErrorLogModel) TableName() string {
	return "error_logs"
}
