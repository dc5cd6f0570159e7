package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("answers are required"), http.StatusBadRequest},
		{"conflict", NewError(ErrConflict, "Email already exists"), http.StatusConflict},
		{"auth", NewError(ErrAuth, "Invalid email or password"), http.StatusUnauthorized},
		{"expired", ErrSessionExpired, http.StatusUnauthorized},
		{"not found", NewError(ErrNotFound, "User not found"), http.StatusNotFound},
		{"evaluation", WrapError(ErrEvaluation, "Server error", errors.New("no json")), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("register: %w", Validation("missing")), http.StatusBadRequest},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusCode(tc.err))
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := WrapError(ErrStore, "Database error", cause)

	assert.ErrorIs(t, err, ErrStore)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Database error: connection refused", err.Error())
	assert.ErrorIs(t, ErrSessionExpired, ErrAuth)
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "User not found", UserMessage(NewError(ErrNotFound, "User not found")))
	assert.Equal(t, "Internal server error", UserMessage(errors.New("sql: broken pipe")))
}
