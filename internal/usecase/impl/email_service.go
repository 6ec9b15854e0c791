package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/domain/constants"
	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/domain/service"
	"portfolio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	titleSubmitEmail  = "Error in the email service"
	titleDeliverEmail = "Error sending the email replies"
)

// emailService implements the EmailUsecase interface.
type emailService struct {
	emailRepo   repository.EmailRepository
	dispatcher  service.EmailDispatcher
	publisher   service.EventPublisher
	errorLogger service.ErrorLogger
	logger      *slog.Logger
}

// EmailServiceParams holds dependencies for EmailService, injected by Fx.
type EmailServiceParams struct {
	fx.In

	EmailRepo   repository.EmailRepository
	Dispatcher  service.EmailDispatcher
	Publisher   service.EventPublisher
	ErrorLogger service.ErrorLogger
	Logger      *slog.Logger
}

// NewEmailService creates a new email service.
func NewEmailService(params EmailServiceParams) usecase.EmailUsecase {
	return &emailService{
		emailRepo:   params.EmailRepo,
		dispatcher:  params.Dispatcher,
		publisher:   params.Publisher,
		errorLogger: params.ErrorLogger,
		logger:      params.Logger,
	}
}

func (srv *emailService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitEmail stores the message and queues its replies.
func (srv *emailService) SubmitEmail(ctx context.Context, input *usecase.SubmitEmailInput) (*usecase.SubmitEmailOutput, error) {
	if !input.Type.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrEmailTypeUnknown)
	}

	email := &entity.InboxEmail{
		Type:         input.Type,
		SenderName:   strings.TrimSpace(input.Name),
		SenderEmail:  entity.NormalizeEmail(input.Email),
		TimeZone:     input.TimeZone,
		Message:      input.Message,
		ArticleTitle: input.ArticleTitle,
		ArticleLink:  input.ArticleLink,
		ArticleImage: input.ArticleImage,
		Status:       entity.EmailStatusQueued,
	}
	if err := srv.emailRepo.Create(ctx, email); err != nil {
		srv.errorLogger.LogError(ctx, titleSubmitEmail, err.Error(), constants.SourceBack)

		return nil, errors.Wrap(domainerrors.ErrEmailSubmitFailed, err.Error())
	}

	if srv.publisher.Enabled() {
		event := &service.EmailEvent{
			RequestID: deliverycontext.GetRequestIDFromContext(ctx),
			EmailID:   email.ID.String(),
			EmailType: email.Type.String(),
		}
		err := srv.publisher.PublishEmailEvent(ctx, event)
		if err == nil {
			srv.log(ctx).Info("Email queued",
				slog.String("email_id", email.ID.String()),
				slog.String("email_type", email.Type.String()),
			)

			return &usecase.SubmitEmailOutput{ID: email.ID, Status: entity.EmailStatusQueued}, nil
		}

		// The row is stored, so the visitor still gets a reply when the queue is down.
		srv.log(ctx).Warn("Failed to publish email event, sending inline",
			slog.String("email_id", email.ID.String()),
			slog.Any("error", err),
		)
	}

	if err := srv.deliver(ctx, email); err != nil {
		return nil, errors.Wrap(domainerrors.ErrEmailSubmitFailed, err.Error())
	}

	return &usecase.SubmitEmailOutput{ID: email.ID, Status: entity.EmailStatusSent}, nil
}

// DeliverEmail sends the replies for a stored message. Already sent messages are skipped
// so that a redelivered event does not mail the visitor twice.
func (srv *emailService) DeliverEmail(ctx context.Context, id uuid.UUID) error {
	email, err := srv.emailRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrEmailNotFound) {
		return errors.WithStack(err)
	}
	if err != nil {
		return &usecase.RetryableError{Err: errors.WithStack(err)}
	}

	if email.Status == entity.EmailStatusSent {
		srv.log(ctx).Info("Email already sent", slog.String("email_id", id.String()))

		return nil
	}

	return srv.deliver(ctx, email)
}

// deliver sends the replies and records the outcome on the row.
func (srv *emailService) deliver(ctx context.Context, email *entity.InboxEmail) error {
	if err := srv.dispatcher.Dispatch(ctx, email); err != nil {
		srv.errorLogger.LogError(ctx, titleDeliverEmail, err.Error(), constants.SourceBack)
		srv.setStatus(ctx, email.ID, entity.EmailStatusFailed)

		return errors.WithStack(err)
	}

	srv.setStatus(ctx, email.ID, entity.EmailStatusSent)
	srv.log(ctx).Info("Email sent",
		slog.String("email_id", email.ID.String()),
		slog.String("email_type", email.Type.String()),
	)

	return nil
}

// setStatus is best-effort: the replies are already out, a stale status must not resend them.
func (srv *emailService) setStatus(ctx context.Context, id uuid.UUID, status entity.EmailStatus) {
	if err := srv.emailRepo.UpdateStatus(ctx, id, status); err != nil {
		srv.log(ctx).Warn("Failed to update email status",
			slog.String("email_id", id.String()),
			slog.String("status", string(status)),
			slog.Any("error", err),
		)
	}
}

// LogFrontError records an error reported by the web front-end.
func (srv *emailService) LogFrontError(ctx context.Context, input *usecase.FrontErrorInput) {
	srv.errorLogger.LogError(ctx, input.Title, input.Summary, constants.SourceFront)
}
