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

// emailRepository implements the domain.EmailRepository interface.
type emailRepository struct {
	db *gorm.DB
}

// NewEmailRepository is the constructor for emailRepository.
func NewEmailRepository(db *gorm.DB) repository.EmailRepository {
	return &emailRepository{db: db}
}

// Create stores a contact form submission.
func (repo *emailRepository) Create(ctx context.Context, email *entity.InboxEmail) error {
	if email.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate email id")
		}
		email.ID = id
	}
	if email.Status == "" {
		email.Status = entity.EmailStatusQueued
	}

	emailM := fromEmailDomain(email)

	if err := repo.db.WithContext(ctx).Create(emailM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid email record")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create email")
	}

	email.CreatedAt = emailM.CreatedAt
	email.UpdatedAt = emailM.UpdatedAt

	return nil
}

// FindByID retrieves a stored submission.
func (repo *emailRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.InboxEmail, error) {
	var emailM model.EmailModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&emailM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEmailNotFound
		}

		return nil, errors.Wrap(err, "failed to find email by id")
	}

	return toEmailDomain(&emailM), nil
}

// UpdateStatus records the delivery outcome of a submission.
func (repo *emailRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.EmailStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EmailModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update email status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEmailNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toEmailDomain(data *model.EmailModel) *entity.InboxEmail {
	if data == nil {
		return nil
	}

	return &entity.InboxEmail{
		ID:           data.ID,
		Type:         entity.EmailType(data.EmailType),
		SenderName:   data.NameSender,
		SenderEmail:  data.EmailSender,
		TimeZone:     data.TZ,
		Message:      data.Message,
		ArticleTitle: data.ArticleTitle,
		ArticleLink:  data.ArticleLink,
		ArticleImage: data.ArticleImage,
		IsRead:       data.IsRead,
		Status:       entity.EmailStatus(data.Status),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromEmailDomain(data *entity.InboxEmail) *model.EmailModel {
	if data == nil {
		return nil
	}

	return &model.EmailModel{
		ID:           data.ID,
		EmailType:    string(data.Type),
		NameSender:   data.SenderName,
		EmailSender:  data.SenderEmail,
		TZ:           data.TimeZone,
		Message:      data.Message,
		ArticleTitle: data.ArticleTitle,
		ArticleLink:  data.ArticleLink,
		ArticleImage: data.ArticleImage,
		IsRead:       data.IsRead,
		Status:       string(data.Status),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
