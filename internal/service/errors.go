package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-goal-keeper/internal/store"
)

var (
	// ErrValidation wraps a validators.Err* value. Nothing was written.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound is returned for unknown ids and for records of another owner.
	ErrNotFound = errors.New("goal not found")
	// ErrStorage is a local persistence failure.
	ErrStorage = errors.New("local storage failure")

	ErrGoalArchived = errors.New("goal is archived")

	ErrNoSession = errors.New("no active session")

	ErrInvalidToken            = errors.New("invalid token")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
)

// storageError maps a store error to ErrNotFound or ErrStorage, keeping the
// original in the chain.
func storageError(op string, err error) error {
	if errors.Is(err, store.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w: %w", op, ErrNotFound, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}

func validationError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrValidation, err)
}

// ErrPhasePanic wraps a panic recovered from a sync phase.
var ErrPhasePanic = errors.New("sync phase panicked")
