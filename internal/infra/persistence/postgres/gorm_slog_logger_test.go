package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"portfolio/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestGormSlogLogger_ParamsFilter(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Debug = true
	cfg.Env.Env = "develop"

	debugLogger := newGormSlogLogger(slog.Default(), cfg)
	sql, params := debugLogger.ParamsFilter(context.Background(), "SELECT 1 WHERE a = $1", "secret")
	assert.Equal(t, "SELECT 1 WHERE a = $1", sql)
	assert.Equal(t, []any{"secret"}, params)

	cfg.Env.Env = "production"
	prodLogger := newGormSlogLogger(slog.Default(), cfg)
	_, params = prodLogger.ParamsFilter(context.Background(), "SELECT 1 WHERE a = $1", "secret")
	assert.Nil(t, params)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l := newGormSlogLogger(base, &config.Config{})

	sqlFn := func() (string, int64) { return "SELECT * FROM users", 1 }

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	assert.Contains(t, buf.String(), "postgres query failed")
	buf.Reset()

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
	assert.Contains(t, buf.String(), "postgres slow query")
	buf.Reset()

	silent := l.LogMode(logger.Silent)
	silent.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	assert.Empty(t, buf.String())
}
