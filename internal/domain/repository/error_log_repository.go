package repository

import (
	"context"

	"portfolio/internal/domain/entity"
)

// ErrorLogRepository appends error log records.
type ErrorLogRepository interface {
	Create(ctx context.Context, log *entity.ErrorLog) error
}
