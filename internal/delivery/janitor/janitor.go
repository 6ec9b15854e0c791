// Package janitor runs periodic cleanup of expired sessions.
package janitor

import (
	"context"
	"log/slog"
	"time"

	"portfolio/config"
	"portfolio/internal/delivery"
	"portfolio/internal/usecase"

	"go.uber.org/fx"
)

type janitor struct {
	authUC   usecase.AuthUsecase
	logger   *slog.Logger
	interval time.Duration
	done     chan struct{}
}

// Params holds dependencies for the session janitor, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	AuthUC usecase.AuthUsecase
}

// New creates the janitor delivery. It stops with the fx application.
func New(params Params) delivery.Delivery {
	j := &janitor{
		authUC:   params.AuthUC,
		logger:   params.Logger,
		interval: params.Cfg.Auth.SessionPurgeInterval,
		done:     make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			close(j.done)

			return nil
		},
	})

	return j
}

// Serve purges expired refresh tokens every interval until the application stops.
func (j *janitor) Serve(ctx context.Context) error {
	if j.interval <= 0 {
		j.logger.Info("Session janitor disabled")

		return nil
	}

	j.logger.Info("Starting session janitor", slog.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-j.done:
			return nil
		case <-ticker.C:
			j.purge(ctx)
		}
	}
}

func (j *janitor) purge(ctx context.Context) {
	removed, err := j.authUC.PurgeExpiredSessions(ctx)
	if err != nil {
		j.logger.Warn("Failed to purge expired sessions", slog.Any("error", err))

		return
	}
	if removed > 0 {
		j.logger.Info("Purged expired sessions", slog.Int64("removed", removed))
	}
}
