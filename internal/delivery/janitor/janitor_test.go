package janitor

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"portfolio/config"
	mockUC "portfolio/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestJanitor(t *testing.T, interval time.Duration) (*fxtest.Lifecycle, *janitor, *mockUC.MockAuthUsecase) {
	t.Helper()

	lc := fxtest.NewLifecycle(t)
	authUC := mockUC.NewMockAuthUsecase(t)
	d := New(Params{
		Lc:     lc,
		Cfg:    &config.Config{Auth: &config.AuthConfig{SessionPurgeInterval: interval}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		AuthUC: authUC,
	})

	j, ok := d.(*janitor)
	require.True(t, ok)

	return lc, j, authUC
}

func TestJanitor_PurgesUntilStopped(t *testing.T) {
	lc, j, authUC := newTestJanitor(t, 10*time.Millisecond)

	purged := make(chan struct{}, 1)
	authUC.EXPECT().
		PurgeExpiredSessions(mock.Anything).
		RunAndReturn(func(context.Context) (int64, error) {
			select {
			case purged <- struct{}{}:
			default:
			}

			return 3, nil
		})

	lc.RequireStart()
	served := make(chan error, 1)
	go func() { served <- j.Serve(context.Background()) }()

	select {
	case <-purged:
	case <-time.After(2 * time.Second):
		t.Fatal("janitor never purged")
	}

	lc.RequireStop()

	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("janitor did not stop")
	}
}

func TestJanitor_ToleratesFailures(t *testing.T) {
	_, j, authUC := newTestJanitor(t, time.Hour)
	authUC.EXPECT().PurgeExpiredSessions(mock.Anything).Return(0, errors.New("db down")).Once()

	j.purge(context.Background())
}

func TestJanitor_Disabled(t *testing.T) {
	_, j, _ := newTestJanitor(t, -1)

	assert.NoError(t, j.Serve(context.Background()))
}
