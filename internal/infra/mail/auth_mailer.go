package mail

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const verificationQRCID = "verify-qr"

type authMailer struct {
	sender service.MailSender
	qrcode service.QRCodeService
	logger *slog.Logger
	now    func() time.Time
}

// AuthMailerParams holds dependencies for the account mailer
type AuthMailerParams struct {
	fx.In

	Sender service.MailSender
	QRCode service.QRCodeService `optional:"true"`
	Logger *slog.Logger
}

// NewAuthMailer builds the account emails on top of a MailSender.
func NewAuthMailer(params AuthMailerParams) service.AuthMailer {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &authMailer{
		sender: params.Sender,
		qrcode: params.QRCode,
		logger: logger,
		now:    time.Now,
	}
}

// SendVerification emails the address confirmation link, with a QR code
// of the same link when the transport can embed images.
func (m *authMailer) SendVerification(ctx context.Context, user *entity.User, link string) error {
	data := cardData{
		Title:     "Confirm your email address",
		Message:   fmt.Sprintf("Hello %s, thank you for creating an account. Please confirm your email address to start signing in. The link is valid for 24 hours.", user.FirstName),
		Link:      link,
		LinkLabel: "Verify my email",
		Reason:    "You are receiving this email because an account was created with this address.",
		Year:      m.now().Year(),
	}
	subject := fmt.Sprintf("Verify your account, %s", user.FullName())

	if inline, ok := m.sender.(service.InlineMailSender); ok {
		if qr := m.linkQR(ctx, link); qr != nil {
			data.QRCodeCID = qr.ContentID
			body, err := render(layoutPortfolio, data)
			if err != nil {
				return err
			}
			_, err = inline.SendWithInline(ctx, user.Email, subject, body, *qr)

			return errors.WithMessage(err, "verification email")
		}
	}

	body, err := render(layoutPortfolio, data)
	if err != nil {
		return err
	}
	_, err = m.sender.Send(ctx, user.Email, subject, body)

	return errors.WithMessage(err, "verification email")
}

// linkQR returns nil when no QR code can be attached; the link alone is enough.
func (m *authMailer) linkQR(ctx context.Context, link string) *service.InlineImage {
	if m.qrcode == nil {
		return nil
	}

	png, err := m.qrcode.LinkPNG(link)
	if err != nil {
		m.logger.WarnContext(ctx, "Sending verification email without QR code", slog.Any("error", err))

		return nil
	}

	return &service.InlineImage{
		ContentID:   verificationQRCID,
		Filename:    "verify.png",
		ContentType: "image/png",
		Data:        png,
	}
}

// SendPasswordReset emails the password reset link.
func (m *authMailer) SendPasswordReset(ctx context.Context, user *entity.User, link string) error {
	body, err := render(layoutPortfolio, cardData{
		Title:     "Reset your password",
		Message:   fmt.Sprintf("Hello %s, we received a request to reset your password. The link expires in 5 minutes. If you did not ask for it, you can ignore this email.", user.FirstName),
		Link:      link,
		LinkLabel: "Reset password",
		Reason:    "You are receiving this email because a password reset was requested for your account.",
		Year:      m.now().Year(),
	})
	if err != nil {
		return err
	}

	_, err = m.sender.Send(ctx, user.Email, "Password reset request", body)

	return errors.WithMessage(err, "password reset email")
}
