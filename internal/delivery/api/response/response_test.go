package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "portfolio/internal/delivery/context"
	domainerrors "portfolio/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-9")

	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]string{"message": "ok"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"message":"ok"},"meta":{"request_id":"req-9"}}`, rec.Body.String())
}

func TestError_DetailsOnlyForClientErrors(t *testing.T) {
	tests := []struct {
		status      int
		wantDetails bool
	}{
		{http.StatusBadRequest, true},
		{http.StatusUnauthorized, false},
		{http.StatusForbidden, false},
		{http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, Error(c, tt.status, "CODE", "message", []string{"field"}))

			body := decodeError(t, rec)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "req-9", body.Meta.RequestID)
			assert.Equal(t, tt.wantDetails, body.Error.Details != nil)
		})
	}
}

func TestFromAppError(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, FromAppError(c, domainerrors.ErrEmailNotVerified))

	body := decodeError(t, rec)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "EMAIL_NOT_VERIFIED", body.Error.Code)
}

func TestInvalidInput(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, InvalidInput(c, "Invalid login input"))

	body := decodeError(t, rec)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, CodeInvalidInput, body.Error.Code)
	assert.Equal(t, "Invalid login input", body.Error.Message)
}
