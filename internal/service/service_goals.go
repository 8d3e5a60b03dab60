package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-goal-keeper/internal/store"
	"github.com/MKhiriev/go-goal-keeper/internal/validators"
	"github.com/MKhiriev/go-goal-keeper/models"
)

// ErrInvalidBody is returned when an update body is not a JSON object of
// goal fields.
var ErrInvalidBody = errors.New("invalid request body")

type remoteGoalService struct {
	goals     *store.MemoryCollection[models.SavingsGoal]
	validator validators.Validator
}

// NewRemoteGoalService backs the stub goals API with an in-memory collection.
func NewRemoteGoalService(goals *store.MemoryCollection[models.SavingsGoal]) RemoteGoalService {
	return &remoteGoalService{
		goals:     goals,
		validator: validators.NewGoalValidator(),
	}
}

func (s *remoteGoalService) List(ctx context.Context, ownerID int64) ([]models.RemoteRecord[models.SavingsGoal], error) {
	return s.goals.List(ctx, ownerID), nil
}

func (s *remoteGoalService) Create(ctx context.Context, req models.CreateRequest[models.SavingsGoal]) (models.RemoteRecord[models.SavingsGoal], error) {
	req.Payload = req.Payload.Normalize()
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.RemoteRecord[models.SavingsGoal]{}, validationError("create goal", err)
	}
	return s.goals.Create(ctx, req.OwnerID, req.Payload), nil
}

// Update decodes body over a copy of the stored payload, so absent fields keep
// their values and a rejected body leaves the stored record untouched.
func (s *remoteGoalService) Update(ctx context.Context, ownerID int64, serverID string, body []byte) (models.RemoteRecord[models.SavingsGoal], error) {
	record, err := s.goals.Update(ctx, ownerID, serverID, func(goal *models.SavingsGoal) error {
		next := goal.Clone()
		if err := json.Unmarshal(body, &next); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
		if err := s.validator.Validate(ctx, next); err != nil {
			return validationError("update goal", err)
		}
		*goal = next
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return models.RemoteRecord[models.SavingsGoal]{}, storageError("update goal", err)
		}
		return models.RemoteRecord[models.SavingsGoal]{}, err
	}
	return record, nil
}

func (s *remoteGoalService) Delete(ctx context.Context, ownerID int64, serverID string) error {
	if err := s.goals.Delete(ctx, ownerID, serverID); err != nil {
		return storageError("delete goal", err)
	}
	return nil
}
