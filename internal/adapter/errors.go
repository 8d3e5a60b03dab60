package adapter

import (
	"errors"
)

// Transport errors. Status-derived errors are matched with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrNetwork is returned when the request never produced a response.
	ErrNetwork = errors.New("network error")
	// ErrTimeout is returned when the request deadline expired.
	ErrTimeout = errors.New("request timeout")

	// ErrMissingServerID is returned when a create response carries no
	// server identity.
	ErrMissingServerID = errors.New("create response has no serverId")
	// ErrInvalidResponse is returned when a response body cannot be decoded.
	ErrInvalidResponse = errors.New("invalid response body")
)

// IsTransient reports whether err is worth retrying on a later cycle:
// network failures, timeouts and 5xx responses.
func IsTransient(err error) bool {
	return errors.Is(err, ErrNetwork) ||
		errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrInternalServerError) ||
		errors.Is(err, ErrBadGateway) ||
		errors.Is(err, ErrServiceUnavailable)
}
