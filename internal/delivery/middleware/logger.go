package middleware

import (
	"log/slog"
	"net/url"
	"time"

	"portfolio/config"
	deliverycontext "portfolio/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

const redacted = "REDACTED"

// sensitiveQueryKeys are query parameters that carry one-time credentials.
var sensitiveQueryKeys = []string{"token"}

// LoggerMiddleware writes one access log line per request when env.debug is on.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle renders handler errors before logging so the line carries the final status.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.debug {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}
		m.logRequest(c, start, err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	status := c.Response().Status

	// The route template keeps addresses in /auth/verify/:email out of the logs.
	route := c.Path()
	if route == "" {
		route = req.URL.Path
	}

	attrs := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("route", route),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", redactQuery(req.URL.Query())))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(req.Context(), level, "HTTP Request", attrs...)
}

// redactQuery hides the verification and reset tokens carried in email links.
func redactQuery(query url.Values) string {
	for _, key := range sensitiveQueryKeys {
		if query.Has(key) {
			query.Set(key, redacted)
		}
	}

	return query.Encode()
}
