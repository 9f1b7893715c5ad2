package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseError(t *testing.T) {
	cause := stderrors.New("unexpected node")

	err := NewParseError("landing.yaml", 12, cause)
	assert.Equal(t, "parse error: landing.yaml:12: unexpected node", err.Error())
	assert.ErrorIs(t, err, cause)

	noLine := NewParseError("landing.yaml", 0, cause)
	assert.Equal(t, "parse error: landing.yaml: unexpected node", noLine.Error())
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("email", "please enter a valid email address", nil)
	assert.Equal(t, "validation error: email: please enter a valid email address", err.Error())

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "email", vErr.Field)

	fieldless := NewValidationError("", "configuration is nil", nil)
	assert.Equal(t, "validation error: configuration is nil", fieldless.Error())
}

func TestDeliveryError(t *testing.T) {
	cause := stderrors.New("connection refused")

	err := NewDeliveryError("https://api.example.com/waitlist", cause)
	assert.Contains(t, err.Error(), "delivery error")
	assert.Contains(t, err.Error(), "api.example.com")
	assert.ErrorIs(t, err, cause)
}

func TestScheduleError(t *testing.T) {
	err := NewScheduleError("wallet", "panel has no measurable inner content")
	assert.Equal(t, "schedule error [wallet]: panel has no measurable inner content", err.Error())

	anon := NewScheduleError("", "no panels")
	assert.Equal(t, "schedule error: no panels", anon.Error())
}
