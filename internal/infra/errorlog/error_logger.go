// Package errorlog persists unexpected failures and pages the administrator.
package errorlog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"portfolio/config"
	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/lifecycle"
	"portfolio/internal/domain/repository"
	"portfolio/internal/domain/service"

	"go.uber.org/fx"
)

// Params holds dependencies for the error logger, injected by Fx
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle `optional:"true"`
	Config    *config.Config
	Repo      repository.ErrorLogRepository
	Alert     service.AlertChannel
	Logger    *slog.Logger
}

type errorLogger struct {
	repo         repository.ErrorLogRepository
	alert        service.AlertChannel
	alertAddress string
	logger       *slog.Logger
	inflight     sync.WaitGroup
}

// New creates the ErrorLogger.
func New(params Params) service.ErrorLogger {
	logger := &errorLogger{
		repo:   params.Repo,
		alert:  params.Alert,
		logger: params.Logger,
	}
	if params.Config.Alert != nil {
		logger.alertAddress = params.Config.Alert.AdminAddress
	}
	if params.Lifecycle != nil {
		params.Lifecycle.Append(fx.Hook{OnStop: logger.drain})
	}

	return logger
}

// LogError stores the record and sends the alert in the background. Both
// failures are logged locally and swallowed.
func (l *errorLogger) LogError(ctx context.Context, title, summary, source string) {
	// Detached so a cancelled request still leaves a record.
	detached := context.WithoutCancel(ctx)
	storeCtx, cancel := context.WithTimeout(detached, lifecycle.DefaultTimeout)
	defer cancel()

	l.logger.ErrorContext(storeCtx, title,
		slog.String("summary", summary),
		slog.String("source", source),
	)

	record := &entity.ErrorLog{Title: title, Summary: summary, Source: source}
	if err := l.repo.Create(storeCtx, record); err != nil {
		l.logger.ErrorContext(storeCtx, "Failed to store error log", slog.Any("error", err))
	}

	if l.alert == nil {
		return
	}

	text := fmt.Sprintf("Ha ocurrido un error en la aplicación, dicho error es: %s. Y se detecto en: %s", summary, source)
	l.inflight.Add(1)
	go l.sendAlert(detached, text)
}

func (l *errorLogger) sendAlert(parent context.Context, text string) {
	defer l.inflight.Done()

	ctx, cancel := context.WithTimeout(parent, lifecycle.DefaultTimeout)
	defer cancel()

	if err := l.alert.Notify(ctx, l.alertAddress, text); err != nil {
		l.logger.WarnContext(ctx, "Failed to send error alert", slog.Any("error", err))
	}
}

// drain waits for in-flight alerts until ctx expires.
func (l *errorLogger) drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		l.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
