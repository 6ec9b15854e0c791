package service

import "context"

// AlertChannel sends urgent, out-of-band notifications to an administrator.
// Implementations are best-effort; callers log and ignore failures.
type AlertChannel interface {
	Notify(ctx context.Context, address, text string) error
}
