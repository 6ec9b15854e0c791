package notification

import (
	"context"
	"log/slog"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
)

const alertTitle = "Portfolio alert"

// messagingClient is the part of *messaging.Client used for alerts.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// firebaseAlert pushes alerts to the administrator's device or topic through FCM.
type firebaseAlert struct {
	client messagingClient
	topic  string
	logger *slog.Logger
}

// Notify sends to the device token in address, or to the configured topic when address is empty.
func (a *firebaseAlert) Notify(ctx context.Context, address, text string) error {
	message := &messaging.Message{
		Notification: &messaging.Notification{
			Title: alertTitle,
			Body:  text,
		},
		Data: map[string]string{"kind": "admin_alert"},
	}

	switch {
	case address != "":
		message.Token = address
	case a.topic != "":
		message.Topic = a.topic
	default:
		return errors.New("firebase alert needs a device token or a topic")
	}

	messageID, err := a.client.Send(ctx, message)
	if err != nil {
		if messaging.IsUnregistered(err) {
			return errors.Wrap(err, "admin device token is no longer registered")
		}

		return errors.Wrap(err, "failed to send firebase alert")
	}

	a.logger.InfoContext(ctx, "Admin alert sent", slog.String("channel", "firebase"), slog.String("messageId", messageID))

	return nil
}
