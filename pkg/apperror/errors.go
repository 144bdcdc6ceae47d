package apperror

import (
	"errors"
	"net/http"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInternal     = errors.New("internal server error")
)

// UnprocessableError is the single business-error kind of the API. Every
// validation failure, rule violation, and not-found on a mutating endpoint
// is reported as one of these with a domain title and a human message.
type UnprocessableError struct {
	Title   string
	Message string
}

func (e *UnprocessableError) Error() string {
	return e.Message
}

// Unprocessable builds an UnprocessableError for a given domain title.
func Unprocessable(title, message string) *UnprocessableError {
	return &UnprocessableError{
		Title:   title,
		Message: message,
	}
}

// MapErrorToStatus maps errors to HTTP status codes. Business errors are
// uniformly 422, even not-found-by-id cases, to match the API contract.
func MapErrorToStatus(err error) int {
	var ue *UnprocessableError
	if errors.As(err, &ue) {
		return http.StatusUnprocessableEntity
	}
	if errors.Is(err, ErrUnauthorized) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrForbidden) {
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}
