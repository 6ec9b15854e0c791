package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	fsys, err := Files()
	require.NoError(t, err)

	names, err := fs.Glob(fsys, "*.sql")
	require.NoError(t, err)
	require.Len(t, names, 2)

	for _, name := range names {
		content, err := fs.ReadFile(fsys, name)
		require.NoError(t, err)

		body := string(content)
		assert.True(t, strings.HasPrefix(body, "-- +goose Up"), name)
		assert.Contains(t, body, "-- +goose Down", name)
	}
}

func TestEmbeddedMigrationsCreateEveryTable(t *testing.T) {
	fsys, err := Files()
	require.NoError(t, err)

	var all strings.Builder
	names, err := fs.Glob(fsys, "*.sql")
	require.NoError(t, err)
	for _, name := range names {
		content, err := fs.ReadFile(fsys, name)
		require.NoError(t, err)
		all.Write(content)
	}

	for _, table := range []string{"users", "refresh_tokens", "revoked_tokens", "error_logs", "emails"} {
		assert.Contains(t, all.String(), "CREATE TABLE IF NOT EXISTS "+table+" (", table)
	}
}
