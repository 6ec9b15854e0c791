package service

import "context"

// DeliveryInfo reports what the mail transport accepted.
type DeliveryInfo struct {
	MessageID string
	Accepted  []string
	Rejected  []string
}

// MailSender delivers a single HTML email.
type MailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) (*DeliveryInfo, error)
}

// InlineImage is an image referenced from the HTML body as cid:<ContentID>.
type InlineImage struct {
	ContentID   string
	Filename    string
	ContentType string
	Data        []byte
}

// InlineMailSender is implemented by transports that can embed images in the message.
type InlineMailSender interface {
	MailSender
	SendWithInline(ctx context.Context, to, subject, htmlBody string, images ...InlineImage) (*DeliveryInfo, error)
}
