package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-goal-keeper/internal/service"
	"github.com/MKhiriev/go-goal-keeper/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:              http.StatusBadRequest,
	service.ErrInvalidBody:             http.StatusBadRequest,
	service.ErrNotFound:                http.StatusNotFound,
	service.ErrStorage:                 http.StatusInternalServerError,
	service.ErrInvalidToken:            http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	ErrEmptyAuthorizationHeader:         http.StatusUnauthorized,
	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrOwnerMismatch:                    http.StatusForbidden,
	ErrInvalidOwnerID:                   http.StatusBadRequest,
	ErrMissingServerID:                  http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err. Server errors hide
// the message.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		msg = http.StatusText(status)
	}
	http.Error(w, msg, status)
}
