package mail

import (
	"context"
	"log/slog"

	"portfolio/config"
	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DispatcherParams holds dependencies for the email dispatcher
type DispatcherParams struct {
	fx.In

	Config *config.Config
	Sender service.MailSender
	Alert  service.AlertChannel
	Logger *slog.Logger
}

type dispatcher struct {
	deps Deps
}

// NewDispatcher wires the variant factory to the configured transports.
func NewDispatcher(params DispatcherParams) service.EmailDispatcher {
	deps := Deps{
		Sender: params.Sender,
		Alert:  params.Alert,
		Logger: params.Logger,
	}
	if params.Config.Site != nil {
		deps.WebURL = params.Config.Site.WebURL
	}
	if params.Config.Mail != nil {
		deps.AdminEmail = params.Config.Mail.AdminEmail
		deps.WorkEmail = params.Config.Mail.WorkEmail
	}
	if params.Config.Alert != nil {
		deps.AlertAddress = params.Config.Alert.AdminAddress
	}

	return &dispatcher{deps: deps}
}

// Dispatch builds the variant for the stored message and sends it.
func (d *dispatcher) Dispatch(ctx context.Context, email *entity.InboxEmail) error {
	msg, ok := NewEmail(email.Type, OptionsFromInbox(email), d.deps)
	if !ok {
		return errors.Wrapf(service.ErrUnknownEmailType, "%q", email.Type)
	}

	return msg.Send(ctx)
}
