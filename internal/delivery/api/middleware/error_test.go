package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio/internal/delivery/api/validator"
	domainerrors "portfolio/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   []string
	}{
		{
			name:       "domain error keeps its message",
			err:        errors.Wrap(domainerrors.ErrPasswordMismatch, "compare"),
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{"PASSWORD_MISMATCH", "Password does not match"},
		},
		{
			name:       "validation error lists fields",
			err:        &validator.ValidationErrors{Errors: []validator.FieldError{{Field: "email", Message: "Must be a valid email address"}}},
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{"VALIDATION_FAILED", `"field":"email"`},
		},
		{
			name:       "echo http error",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   []string{"HTTP_ERROR"},
		},
		{
			name:       "unknown error is hidden",
			err:        errors.New("dial tcp: refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{"INTERNAL_ERROR"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, rec.Body.String(), want)
			}
			assert.NotContains(t, rec.Body.String(), "refused")
		})
	}
}
