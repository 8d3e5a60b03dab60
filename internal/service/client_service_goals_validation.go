package service

import (
	"context"

	"github.com/MKhiriev/go-goal-keeper/internal/validators"
	"github.com/MKhiriev/go-goal-keeper/models"
)

// GoalValidationService rejects invalid input before the wrapped service
// writes anything.
type GoalValidationService struct {
	inner     GoalService
	validator validators.Validator
}

func NewGoalValidationService() GoalServiceWrapper {
	return &GoalValidationService{
		validator: validators.NewGoalValidator(),
	}
}

func (v *GoalValidationService) Create(ctx context.Context, ownerID int64, goal models.SavingsGoal) (models.LocalRecord[models.SavingsGoal], error) {
	if ownerID <= 0 {
		return models.LocalRecord[models.SavingsGoal]{}, validationError("create goal", validators.ErrInvalidOwnerID)
	}
	if err := v.validator.Validate(ctx, goal.Normalize()); err != nil {
		return models.LocalRecord[models.SavingsGoal]{}, validationError("create goal", err)
	}
	return v.inner.Create(ctx, ownerID, goal)
}

func (v *GoalValidationService) Update(ctx context.Context, ownerID, localID int64, patch models.GoalPatch) (models.LocalRecord[models.SavingsGoal], error) {
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.LocalRecord[models.SavingsGoal]{}, validationError("update goal", err)
	}
	return v.inner.Update(ctx, ownerID, localID, patch)
}

func (v *GoalValidationService) Contribute(ctx context.Context, ownerID, localID int64, contribution models.Contribution) (models.LocalRecord[models.SavingsGoal], error) {
	if err := v.validator.Validate(ctx, contribution); err != nil {
		return models.LocalRecord[models.SavingsGoal]{}, validationError("contribute", err)
	}
	return v.inner.Contribute(ctx, ownerID, localID, contribution)
}

func (v *GoalValidationService) Delete(ctx context.Context, session models.Session, localID int64) error {
	return v.inner.Delete(ctx, session, localID)
}

func (v *GoalValidationService) Get(ctx context.Context, ownerID, localID int64) (models.LocalRecord[models.SavingsGoal], error) {
	return v.inner.Get(ctx, ownerID, localID)
}

func (v *GoalValidationService) List(ctx context.Context, ownerID int64) ([]models.LocalRecord[models.SavingsGoal], error) {
	return v.inner.List(ctx, ownerID)
}

func (v *GoalValidationService) Wait() {
	v.inner.Wait()
}

func (v *GoalValidationService) Wrap(inner GoalService) GoalService {
	v.inner = inner
	return v
}
