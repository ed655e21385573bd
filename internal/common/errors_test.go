package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageErrorMessage(t *testing.T) {
	err := NewScenarioError("login", "not logged in").WithDetails("indeterminate")
	assert.Equal(t, "[scenario:login] not logged in: indeterminate", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}

func TestWrapErrorUnwraps(t *testing.T) {
	cause := errors.New("net::ERR_CONNECTION_REFUSED")
	err := WrapError(cause, ErrorTypeNavigation, "goto_failed", "navigation failed").
		WithContext("url", "http://jira.local")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "[navigation:goto_failed] navigation failed: net::ERR_CONNECTION_REFUSED", err.Error())
	assert.Equal(t, "http://jira.local", err.Context["url"])
	assert.False(t, err.Timestamp.IsZero())
}

func TestErrorConstructorsSetType(t *testing.T) {
	cases := map[ErrorType]*PageError{
		ErrorTypeConfiguration: NewConfigurationError("c", "m"),
		ErrorTypeValidation:    NewValidationError("c", "m"),
		ErrorTypeDriver:        NewDriverError("c", "m"),
		ErrorTypeNavigation:    NewNavigationError("c", "m"),
		ErrorTypeScenario:      NewScenarioError("c", "m"),
	}
	for want, err := range cases {
		assert.Equal(t, want, err.Type)
	}
}
