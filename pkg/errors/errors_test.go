package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorWithCause(t *testing.T) {
	cause := fmt.Errorf("dial tcp: refused")
	err := NewServiceError("forecast failed", "weather", "forecast", cause)

	assert.Equal(t, "forecast failed: dial tcp: refused", err.Error())
	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, CodeService, err.Code)
	assert.Equal(t, "weather", err.Context["service"])
}

func TestStatusOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 200},
		{"plain", fmt.Errorf("boom"), 500},
		{"validation", NewValidationError("bad modality", "modality", "cruise"), 400},
		{"not found", NewNotFoundError("package", "atlantis"), 404},
		{"auth", NewAuthError("invalid credentials"), 401},
		{"wrapped", fmt.Errorf("handler: %w", NewNotFoundError("lead", "42")), 404},
		{"api", NewAPIError("upstream", 502, nil), 502},
		{"zero status", NewAppError("odd", CodeAppError, 0, nil), 500},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusOf(tc.err))
		})
	}
}

func TestErrorsAs(t *testing.T) {
	var err error = fmt.Errorf("wrap: %w", NewValidationError("weight must be positive", "weight", -1))

	var ve *ValidationError
	require.True(t, stderrors.As(err, &ve))
	assert.Equal(t, "weight", ve.Field)
	assert.Equal(t, -1, ve.Value)

	nf := NewNotFoundError("wizard session", "abc")
	assert.Equal(t, `wizard session "abc" not found`, nf.Error())
}

func TestAppErrorOf(t *testing.T) {
	app, ok := AppErrorOf(fmt.Errorf("capture: %w", NewValidationError("invalid email", "email", "x")))
	require.True(t, ok)
	assert.Equal(t, CodeValidation, app.Code)
	assert.Equal(t, "invalid email", app.Message)

	_, ok = AppErrorOf(fmt.Errorf("plain"))
	assert.False(t, ok)
}
