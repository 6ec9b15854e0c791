package notification

import (
	"context"
	"log/slog"
)

// logAlert only writes alerts to the log; used when no provider is configured.
type logAlert struct {
	logger *slog.Logger
}

func (a *logAlert) Notify(ctx context.Context, address, text string) error {
	a.logger.WarnContext(ctx, "Admin alert",
		slog.String("channel", "log"),
		slog.String("address", address),
		slog.String("text", text),
	)

	return nil
}
