package dto

import (
	"errors"
	"net/http"

	"github.com/foodcourt/backend/internal/domain/ordering"
	"github.com/foodcourt/backend/internal/domain/shared"
)

// Generic error codes used by the HTTP layer itself
const (
	ErrCodeInternal    = "INTERNAL_ERROR"
	ErrCodeBadRequest  = "BAD_REQUEST"
	ErrCodeValidation  = "VALIDATION_ERROR"
	ErrCodeRateLimited = "RATE_LIMITED"
)

// domainCodeHTTPStatus maps domain error codes to HTTP status codes.
// Order validation failures are 422: the request was well-formed, the
// business rules rejected it.
var domainCodeHTTPStatus = map[string]int{
	"NOT_FOUND": http.StatusNotFound,

	"ALREADY_EXISTS":     http.StatusConflict,
	"ALREADY_ALLOCATED":  http.StatusConflict,
	"DUPLICATE_USERNAME": http.StatusConflict,

	"UNAUTHORIZED":        http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"FORBIDDEN":           http.StatusForbidden,

	ordering.CodeNotEnrolled:       http.StatusUnprocessableEntity,
	ordering.CodeEventNotActive:    http.StatusUnprocessableEntity,
	ordering.CodeNoInventory:       http.StatusUnprocessableEntity,
	ordering.CodeItemNotAllocated:  http.StatusUnprocessableEntity,
	ordering.CodeItemInactive:      http.StatusUnprocessableEntity,
	ordering.CodeInsufficientStock: http.StatusUnprocessableEntity,
	ordering.CodeTeamCapExceeded:   http.StatusUnprocessableEntity,
	ordering.CodeCannotCancel:      http.StatusUnprocessableEntity,
	"INVALID_STATE":                http.StatusUnprocessableEntity,
	"INVALID_STATUS":               http.StatusUnprocessableEntity,

	ErrCodeRateLimited: http.StatusTooManyRequests,
	ErrCodeInternal:    http.StatusInternalServerError,
}

// HTTPStatusForCode returns the HTTP status for a domain error code.
// Unlisted codes are treated as input validation failures (400); the
// domain only raises codes outside the table for constructor-level
// input checks (INVALID_NAME, INVALID_QUANTITY, ...).
func HTTPStatusForCode(code string) int {
	if status, ok := domainCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusBadRequest
}

// DomainErrorResponse converts any error into an HTTP status plus error
// response body. Non-domain errors are reported as opaque internals so
// driver and SQL details never leak to clients.
func DomainErrorResponse(err error) (int, Response) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return HTTPStatusForCode(domainErr.Code), NewErrorResponse(domainErr.Code, domainErr.Message)
	}
	return http.StatusInternalServerError, NewErrorResponse(ErrCodeInternal, "An internal error occurred")
}
