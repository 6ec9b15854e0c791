package mail

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	"portfolio/config"
	"portfolio/internal/domain/service"

	"github.com/pkg/errors"
	gomail "github.com/wneessen/go-mail"
	"go.uber.org/fx"
)

const smtpTimeout = 15 * time.Second

// smtpClient is the part of *gomail.Client the sender uses.
type smtpClient interface {
	DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error
}

// smtpSender implements service.InlineMailSender over an SMTP relay.
type smtpSender struct {
	client smtpClient
	from   string
	logger *slog.Logger
}

// SenderParams holds dependencies for the SMTP sender
type SenderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewSMTPSender creates the SMTP transport. Port 465 (or mail.tls) uses
// implicit TLS, anything else upgrades with STARTTLS.
func NewSMTPSender(params SenderParams) (service.MailSender, error) {
	cfg := params.Config.Mail
	if cfg == nil || cfg.Host == "" {
		return nil, errors.New("mail.host must be configured")
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTimeout(smtpTimeout),
	}
	if cfg.TLS || cfg.Port == 465 {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SMTP client")
	}

	return newSMTPSender(client, cfg.From, params.Logger), nil
}

func newSMTPSender(client smtpClient, from string, logger *slog.Logger) *smtpSender {
	if logger == nil {
		logger = slog.Default()
	}

	return &smtpSender{client: client, from: from, logger: logger}
}

// Send delivers one HTML message.
func (s *smtpSender) Send(ctx context.Context, to, subject, htmlBody string) (*service.DeliveryInfo, error) {
	return s.SendWithInline(ctx, to, subject, htmlBody)
}

// SendWithInline delivers one HTML message with embedded images.
func (s *smtpSender) SendWithInline(ctx context.Context, to, subject, htmlBody string, images ...service.InlineImage) (*service.DeliveryInfo, error) {
	msg := gomail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return nil, errors.Wrapf(err, "invalid sender address %q", s.from)
	}
	if err := msg.To(to); err != nil {
		return &service.DeliveryInfo{Rejected: []string{to}}, errors.Wrapf(err, "invalid recipient address %q", to)
	}
	msg.Subject(subject)
	msg.SetMessageID()
	msg.SetDate()
	msg.SetBodyString(gomail.TypeTextHTML, htmlBody)

	for _, img := range images {
		opts := []gomail.FileOption{gomail.WithFileContentID(img.ContentID)}
		if img.ContentType != "" {
			opts = append(opts, gomail.WithFileContentType(gomail.ContentType(img.ContentType)))
		}
		if err := msg.EmbedReader(img.Filename, bytes.NewReader(img.Data), opts...); err != nil {
			return nil, errors.Wrapf(err, "failed to embed %s", img.Filename)
		}
	}

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		s.logger.ErrorContext(ctx, "SMTP delivery failed",
			slog.String("to", to),
			slog.String("subject", subject),
			slog.Any("error", err),
		)

		return &service.DeliveryInfo{Rejected: []string{to}}, errors.Wrap(err, "failed to send email")
	}

	return &service.DeliveryInfo{
		MessageID: msg.GetMessageID(),
		Accepted:  []string{to},
	}, nil
}
