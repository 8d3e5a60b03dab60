package store

import (
	"github.com/MKhiriev/go-goal-keeper/models"
)

// Payload columns of the goals table.
const (
	GoalColumnName          = "name"
	GoalColumnTargetAmount  = "target_amount"
	GoalColumnCurrentAmount = "current_amount"
	GoalColumnDeadline      = "deadline"
	GoalColumnStatus        = "status"
)

// GoalsTable maps [models.SavingsGoal] onto the goals table. Amounts are
// stored as decimal text so no precision is lost.
var GoalsTable = Table[models.SavingsGoal]{
	Name: "goals",
	Columns: []string{
		GoalColumnName,
		GoalColumnTargetAmount,
		GoalColumnCurrentAmount,
		GoalColumnDeadline,
		GoalColumnStatus,
	},
	Values: func(g models.SavingsGoal) []any {
		return []any{g.Name, g.TargetAmount.String(), g.CurrentAmount.String(), g.Deadline, string(g.Status)}
	},
	Scan: func(g *models.SavingsGoal) []any {
		return []any{&g.Name, &g.TargetAmount, &g.CurrentAmount, &g.Deadline, &g.Status}
	},
	Equal: func(a, b models.SavingsGoal) bool {
		return a.Equal(b)
	},
}

// GoalPatchFields turns the non-nil fields of patch into a column map for
// [SyncRepository.Update].
func GoalPatchFields(patch models.GoalPatch) map[string]any {
	fields := make(map[string]any, 5)
	if patch.Name != nil {
		fields[GoalColumnName] = *patch.Name
	}
	if patch.TargetAmount != nil {
		fields[GoalColumnTargetAmount] = patch.TargetAmount.String()
	}
	if patch.CurrentAmount != nil {
		fields[GoalColumnCurrentAmount] = patch.CurrentAmount.String()
	}
	if patch.Deadline != nil {
		fields[GoalColumnDeadline] = patch.Deadline.String()
	}
	if patch.Status != nil {
		fields[GoalColumnStatus] = string(*patch.Status)
	}
	return fields
}
