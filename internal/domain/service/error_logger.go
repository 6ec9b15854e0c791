package service

import "context"

// ErrorLogger records unexpected failures and alerts the administrator.
// It never returns an error: a broken audit channel must not fail a request.
type ErrorLogger interface {
	LogError(ctx context.Context, title, summary, source string)
}
