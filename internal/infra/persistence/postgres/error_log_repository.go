package postgres

import (
	"context"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type errorLogRepository struct {
	db *gorm.DB
}

// NewErrorLogRepository is the constructor for errorLogRepository.
func NewErrorLogRepository(db *gorm.DB) repository.ErrorLogRepository {
	return &errorLogRepository{db: db}
}

// Create appends an error log record.
func (repo *errorLogRepository) Create(ctx context.Context, log *entity.ErrorLog) error {
	if log.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate error log id")
		}
		log.ID = id
	}

	logM := &model.ErrorLogModel{
		ID:      log.ID,
		Title:   log.Title,
		Summary: log.Summary,
		Source:  log.Source,
	}

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create error log")
	}

	log.CreatedAt = logM.CreatedAt

	return nil
}
