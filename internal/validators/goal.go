package validators

import (
	"context"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-goal-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldOwnerID       = "owner_id"
	FieldName          = "name"
	FieldTargetAmount  = "target_amount"
	FieldCurrentAmount = "current_amount"
	FieldStatus        = "status"
	FieldAmount        = "amount"
)

// MaxGoalNameLength is the maximum goal name length in runes.
const MaxGoalNameLength = 200

// GoalValidator implements [Validator] for savings goals, goal patches,
// contributions and create requests.
type GoalValidator struct{}

// NewGoalValidator constructs a new GoalValidator.
func NewGoalValidator() Validator {
	return &GoalValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer forms
// are accepted.
//
// Supported types:
//   - models.SavingsGoal
//   - models.GoalPatch
//   - models.Contribution
//   - models.CreateRequest[models.SavingsGoal]
func (v *GoalValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SavingsGoal:
		return v.validateGoal(ctx, value, fields...)
	case *models.SavingsGoal:
		return v.validateGoal(ctx, *value, fields...)

	case models.GoalPatch:
		return v.validatePatch(ctx, value)
	case *models.GoalPatch:
		return v.validatePatch(ctx, *value)

	case models.Contribution:
		return v.validateContribution(value)
	case *models.Contribution:
		return v.validateContribution(*value)

	case models.CreateRequest[models.SavingsGoal]:
		return v.validateCreateRequest(ctx, value)
	case *models.CreateRequest[models.SavingsGoal]:
		return v.validateCreateRequest(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

// validateGoal checks a full payload. Default fields: name, target_amount,
// current_amount, status.
func (v *GoalValidator) validateGoal(_ context.Context, goal models.SavingsGoal, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldTargetAmount, FieldCurrentAmount, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			name := strings.TrimSpace(goal.Name)
			if name == "" {
				return ErrEmptyName
			}
			if utf8.RuneCountInString(name) > MaxGoalNameLength {
				return ErrNameTooLong
			}
		case FieldTargetAmount:
			if !goal.TargetAmount.IsPositive() {
				return ErrInvalidTargetAmount
			}
		case FieldCurrentAmount:
			if goal.CurrentAmount.IsNegative() {
				return ErrInvalidCurrentAmount
			}
		case FieldStatus:
			if !slices.Contains(models.GoalStatuses, goal.Status) {
				return ErrInvalidStatus
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePatch checks only the fields the patch carries.
func (v *GoalValidator) validatePatch(ctx context.Context, patch models.GoalPatch) error {
	if patch.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	var (
		goal   models.SavingsGoal
		fields []string
	)
	if patch.Name != nil {
		goal.Name = *patch.Name
		fields = append(fields, FieldName)
	}
	if patch.TargetAmount != nil {
		goal.TargetAmount = *patch.TargetAmount
		fields = append(fields, FieldTargetAmount)
	}
	if patch.CurrentAmount != nil {
		goal.CurrentAmount = *patch.CurrentAmount
		fields = append(fields, FieldCurrentAmount)
	}
	if patch.Status != nil {
		goal.Status = *patch.Status
		fields = append(fields, FieldStatus)
	}
	if len(fields) == 0 {
		// deadline only
		return nil
	}

	return v.validateGoal(ctx, goal, fields...)
}

func (v *GoalValidator) validateContribution(c models.Contribution) error {
	if !c.Amount.IsPositive() {
		return ErrInvalidContribution
	}
	return nil
}

func (v *GoalValidator) validateCreateRequest(ctx context.Context, req models.CreateRequest[models.SavingsGoal]) error {
	if req.OwnerID <= 0 {
		return ErrInvalidOwnerID
	}
	return v.validateGoal(ctx, req.Payload)
}
