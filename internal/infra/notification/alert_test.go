package notification

import (
	"context"
	"log/slog"
	"testing"

	"portfolio/config"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type fakeCreator struct {
	params *twilioApi.CreateMessageParams
	err    error
}

func (f *fakeCreator) CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	sid := "SM123"

	return &twilioApi.ApiV2010Message{Sid: &sid}, nil
}

type fakeMessaging struct {
	message *messaging.Message
	err     error
}

func (f *fakeMessaging) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.message = message

	return "projects/p/messages/1", f.err
}

func TestWhatsAppAlert_Notify(t *testing.T) {
	api := &fakeCreator{}
	alert := &whatsappAlert{api: api, from: "+14155238886", logger: slog.Default()}

	require.NoError(t, alert.Notify(context.Background(), "+573001112233", "server down"))
	require.NotNil(t, api.params)
	assert.Equal(t, "whatsapp:+573001112233", *api.params.To)
	assert.Equal(t, "whatsapp:+14155238886", *api.params.From)
	assert.Equal(t, "server down", *api.params.Body)
}

func TestWhatsAppAlert_Errors(t *testing.T) {
	alert := &whatsappAlert{api: &fakeCreator{err: errors.New("401")}, from: "+1", logger: slog.Default()}

	assert.Error(t, alert.Notify(context.Background(), "", "text"))
	assert.Error(t, alert.Notify(context.Background(), "+57", "text"))
}

func TestWhatsAppAddress(t *testing.T) {
	assert.Equal(t, "whatsapp:+1", whatsappAddress("+1"))
	assert.Equal(t, "whatsapp:+1", whatsappAddress("whatsapp:+1"))
}

func TestFirebaseAlert_Notify(t *testing.T) {
	client := &fakeMessaging{}
	alert := &firebaseAlert{client: client, topic: "admin", logger: slog.Default()}

	require.NoError(t, alert.Notify(context.Background(), "device-token", "server down"))
	assert.Equal(t, "device-token", client.message.Token)
	assert.Empty(t, client.message.Topic)
	assert.Equal(t, "server down", client.message.Notification.Body)

	require.NoError(t, alert.Notify(context.Background(), "", "server down"))
	assert.Equal(t, "admin", client.message.Topic)
}

func TestFirebaseAlert_NoTarget(t *testing.T) {
	alert := &firebaseAlert{client: &fakeMessaging{}, logger: slog.Default()}

	assert.Error(t, alert.Notify(context.Background(), "", "server down"))
}

func TestNewAlertChannel(t *testing.T) {
	tests := []struct {
		name    string
		alert   *config.AlertConfig
		wantLog bool
		wantErr bool
	}{
		{name: "not configured", alert: nil, wantLog: true},
		{name: "empty provider", alert: &config.AlertConfig{}, wantLog: true},
		{name: "whatsapp without credentials", alert: &config.AlertConfig{Provider: "whatsapp"}, wantErr: true},
		{name: "firebase without section", alert: &config.AlertConfig{Provider: "firebase"}, wantErr: true},
		{name: "unknown provider", alert: &config.AlertConfig{Provider: "pager"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			channel, err := NewAlertChannel(AlertParams{
				Ctx:    context.Background(),
				Config: &config.Config{Alert: tt.alert},
				Logger: slog.Default(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			_, isLog := channel.(*logAlert)
			assert.Equal(t, tt.wantLog, isLog)
		})
	}
}

func TestNewAlertChannel_WhatsApp(t *testing.T) {
	channel, err := NewAlertChannel(AlertParams{
		Ctx: context.Background(),
		Config: &config.Config{Alert: &config.AlertConfig{
			Provider: "whatsapp",
			Twilio:   &config.TwilioConfig{AccountSID: "AC123", AuthToken: "secret", From: "+14155238886"},
		}},
		Logger: slog.Default(),
	})
	require.NoError(t, err)
	assert.IsType(t, &whatsappAlert{}, channel)
}
