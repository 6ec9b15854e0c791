package notification

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

const whatsappPrefix = "whatsapp:"

// messageCreator is the part of the Twilio REST API used for alerts.
type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// whatsappAlert sends alerts as WhatsApp messages through Twilio.
type whatsappAlert struct {
	api    messageCreator
	from   string
	logger *slog.Logger
}

// Notify sends text to the WhatsApp number in address.
func (a *whatsappAlert) Notify(ctx context.Context, address, text string) error {
	if address == "" {
		return errors.New("whatsapp alert needs a destination number")
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(whatsappAddress(address))
	params.SetFrom(whatsappAddress(a.from))
	params.SetBody(text)

	resp, err := a.api.CreateMessage(params)
	if err != nil {
		return errors.Wrap(err, "failed to send whatsapp alert")
	}

	attrs := []slog.Attr{slog.String("channel", "whatsapp")}
	if resp != nil && resp.Sid != nil {
		attrs = append(attrs, slog.String("sid", *resp.Sid))
	}
	a.logger.LogAttrs(ctx, slog.LevelInfo, "Admin alert sent", attrs...)

	return nil
}

func whatsappAddress(number string) string {
	if strings.HasPrefix(number, whatsappPrefix) {
		return number
	}

	return whatsappPrefix + number
}
