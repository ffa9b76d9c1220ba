package errors

import (
	"errors"
	"net/http"
)

// MapToHTTPStatus translates a service error into the status returned by the HTTP boundary.
func MapToHTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrAuthRejected):
		return http.StatusUnauthorized
	case errors.Is(err, ErrAuthorizationDenied):
		return http.StatusForbidden
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrCandidateNotFound),
		errors.Is(err, ErrNoteNotFound),
		errors.Is(err, ErrNotificationNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrInvalidPassword),
		errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrUserAlreadyExists),
		errors.Is(err, ErrCandidateAlreadyExists):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
