// Package notification provides the urgent admin alert channels.
package notification

import (
	"context"
	"log/slog"

	"portfolio/config"
	"portfolio/internal/domain/constants"
	"portfolio/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"github.com/twilio/twilio-go"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// AlertParams holds dependencies for the alert channel, injected by Fx
type AlertParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewAlertChannel selects the alert provider from alert.provider.
func NewAlertChannel(params AlertParams) (service.AlertChannel, error) {
	cfg := params.Config.Alert
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Alert provider not configured, alerts are only logged")

		return &logAlert{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.AlertProviderWhatsApp:
		if cfg.Twilio == nil || cfg.Twilio.AccountSID == "" || cfg.Twilio.AuthToken == "" || cfg.Twilio.From == "" {
			return nil, errors.New("alert.twilio accountSid, authToken and from are required for whatsapp alerts")
		}

		client := twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.Twilio.AccountSID,
			Password: cfg.Twilio.AuthToken,
		})
		logger.Info("Using WhatsApp alert channel")

		return &whatsappAlert{api: client.Api, from: cfg.Twilio.From, logger: logger}, nil

	case constants.AlertProviderFirebase:
		if cfg.Firebase == nil {
			return nil, errors.New("alert.firebase is required for firebase alerts")
		}

		var opts []option.ClientOption
		if cfg.Firebase.CredentialsPath != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
		}

		var appConfig *firebase.Config
		if cfg.Firebase.ProjectID != "" {
			appConfig = &firebase.Config{ProjectID: cfg.Firebase.ProjectID}
		}

		app, err := firebase.NewApp(params.Ctx, appConfig, opts...)
		if err != nil {
			return nil, errors.Wrap(err, "failed to initialize Firebase app")
		}

		client, err := app.Messaging(params.Ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get messaging client")
		}
		logger.Info("Using Firebase alert channel")

		return &firebaseAlert{client: client, topic: cfg.Firebase.Topic, logger: logger}, nil

	default:
		return nil, errors.Errorf("unknown alert provider: %s", cfg.Provider)
	}
}

// Module provides the alert channel FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewAlertChannel),
)
