package mail

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/service"
	mockSvc "portfolio/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inlineSender struct {
	fakeSender
	images []service.InlineImage
}

func (f *inlineSender) SendWithInline(ctx context.Context, to, subject, htmlBody string, images ...service.InlineImage) (*service.DeliveryInfo, error) {
	f.images = append(f.images, images...)

	return f.Send(ctx, to, subject, htmlBody)
}

const verifyLink = "https://api.example.com/auth/verify/ana%40example.com?token=abc"

func newTestAuthMailer(sender service.MailSender, qr service.QRCodeService) *authMailer {
	m := NewAuthMailer(AuthMailerParams{Sender: sender, QRCode: qr, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}).(*authMailer)
	m.now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }

	return m
}

func testUser() *entity.User {
	return &entity.User{FirstName: "Ana", FirstSurname: "Lopez", Email: "ana@example.com"}
}

func TestAuthMailer_SendVerificationWithQRCode(t *testing.T) {
	sender := &inlineSender{}
	qr := mockSvc.NewMockQRCodeService(t)
	qr.EXPECT().LinkPNG(verifyLink).Return([]byte("png"), nil).Once()

	require.NoError(t, newTestAuthMailer(sender, qr).SendVerification(context.Background(), testUser(), verifyLink))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "ana@example.com", sender.sent[0].to)
	assert.Contains(t, sender.sent[0].body, `cid:verify-qr`)
	assert.Contains(t, sender.sent[0].body, "2026")

	require.Len(t, sender.images, 1)
	assert.Equal(t, "verify-qr", sender.images[0].ContentID)
	assert.Equal(t, []byte("png"), sender.images[0].Data)
}

func TestAuthMailer_SendVerificationQRCodeFailure(t *testing.T) {
	sender := &inlineSender{}
	qr := mockSvc.NewMockQRCodeService(t)
	qr.EXPECT().LinkPNG(verifyLink).Return(nil, errors.New("too long")).Once()

	require.NoError(t, newTestAuthMailer(sender, qr).SendVerification(context.Background(), testUser(), verifyLink))

	require.Len(t, sender.sent, 1)
	assert.NotContains(t, sender.sent[0].body, "cid:")
	assert.Empty(t, sender.images)
}

func TestAuthMailer_SendVerificationPlainSender(t *testing.T) {
	sender := &fakeSender{}

	// A transport without inline support never asks for the QR code.
	qr := mockSvc.NewMockQRCodeService(t)

	require.NoError(t, newTestAuthMailer(sender, qr).SendVerification(context.Background(), testUser(), verifyLink))

	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0].body, "Verify my email")
	assert.NotContains(t, sender.sent[0].body, "cid:")
}

func TestAuthMailer_SendPasswordReset(t *testing.T) {
	sender := &fakeSender{failTo: "ana@example.com"}

	err := newTestAuthMailer(sender, nil).SendPasswordReset(context.Background(), testUser(), "https://example.com/reset")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password reset email")
}
