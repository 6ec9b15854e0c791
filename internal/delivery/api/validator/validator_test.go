package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Kind     string `json:"email_type" validate:"omitempty,oneof=a b"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	t.Run("valid struct", func(t *testing.T) {
		assert.NoError(t, v.Validate(&sample{Email: "a@b.co", Password: "secret"}))
	})

	t.Run("reports json field names", func(t *testing.T) {
		err := v.Validate(&sample{Email: "nope", Password: "123", Kind: "c"})

		var ve *ValidationErrors
		require.True(t, errors.As(err, &ve))
		require.Len(t, ve.Errors, 3)
		assert.Equal(t, FieldError{Field: "email", Message: "Must be a valid email address"}, ve.Errors[0])
		assert.Equal(t, FieldError{Field: "password", Message: "Must be at least 6 characters"}, ve.Errors[1])
		assert.Equal(t, FieldError{Field: "email_type", Message: "Must be one of: a b"}, ve.Errors[2])
		assert.Contains(t, err.Error(), "password: Must be at least 6 characters")
	})

	t.Run("required", func(t *testing.T) {
		err := v.Validate(&sample{})

		var ve *ValidationErrors
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "This field is required", ve.Errors[0].Message)
	})
}
