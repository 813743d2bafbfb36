package dto

import (
	"errors"
	"net/http"
	"testing"

	"github.com/foodcourt/backend/internal/domain/ordering"
	"github.com/foodcourt/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatusForCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want int
	}{
		{"not found maps to 404", "NOT_FOUND", http.StatusNotFound},
		{"duplicate username maps to 409", "DUPLICATE_USERNAME", http.StatusConflict},
		{"already allocated maps to 409", "ALREADY_ALLOCATED", http.StatusConflict},
		{"invalid credentials maps to 401", "INVALID_CREDENTIALS", http.StatusUnauthorized},
		{"forbidden maps to 403", "FORBIDDEN", http.StatusForbidden},
		{"not enrolled maps to 422", ordering.CodeNotEnrolled, http.StatusUnprocessableEntity},
		{"insufficient stock maps to 422", ordering.CodeInsufficientStock, http.StatusUnprocessableEntity},
		{"team cap exceeded maps to 422", ordering.CodeTeamCapExceeded, http.StatusUnprocessableEntity},
		{"cannot cancel maps to 422", ordering.CodeCannotCancel, http.StatusUnprocessableEntity},
		{"rate limited maps to 429", ErrCodeRateLimited, http.StatusTooManyRequests},
		{"internal maps to 500", ErrCodeInternal, http.StatusInternalServerError},
		{"constructor validation codes map to 400", "INVALID_QUANTITY", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatusForCode(tt.code))
		})
	}
}

func TestDomainErrorResponse(t *testing.T) {
	t.Run("exposes domain error code and message", func(t *testing.T) {
		err := ordering.NewInsufficientStockError("Pizza", 2, 5)

		status, resp := DomainErrorResponse(err)

		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "INSUFFICIENT_STOCK", resp.Error.Code)
		assert.Equal(t, "Not enough quantity available for Pizza. Available: 2, Requested: 5", resp.Error.Message)
	})

	t.Run("unwraps wrapped domain errors", func(t *testing.T) {
		wrapped := errors.Join(errors.New("context"), shared.ErrNotFound)

		status, resp := DomainErrorResponse(wrapped)

		assert.Equal(t, http.StatusNotFound, status)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	})

	t.Run("hides non-domain errors behind an opaque internal error", func(t *testing.T) {
		status, resp := DomainErrorResponse(errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, status)
		require.NotNil(t, resp.Error)
		assert.Equal(t, ErrCodeInternal, resp.Error.Code)
		assert.NotContains(t, resp.Error.Message, "pq:")
	})
}
