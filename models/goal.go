// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// GoalStatus is the lifecycle status of a savings goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusArchived  GoalStatus = "archived"
)

// GoalStatuses is the exhaustive set of statuses accepted by validation.
var GoalStatuses = []GoalStatus{
	GoalStatusActive,
	GoalStatusCompleted,
	GoalStatusArchived,
}

// GoalsCollection is the REST collection name of savings goals.
const GoalsCollection = "goals"

// SavingsGoal is the domain payload of a savings goal. The sync engine treats
// it as opaque; only the goal service and the goals table descriptor know its
// fields.
type SavingsGoal struct {
	// Name is the user-facing title of the goal (e.g. "Trip").
	Name string `json:"name"`

	// TargetAmount is the amount the user wants to save.
	TargetAmount decimal.Decimal `json:"targetAmount"`

	// CurrentAmount is the amount saved so far.
	CurrentAmount decimal.Decimal `json:"currentAmount"`

	// Deadline is an optional due date.
	Deadline *Date `json:"deadline,omitempty"`

	// Status is the lifecycle status of the goal.
	Status GoalStatus `json:"status"`
}

// Equal reports whether two payloads carry the same values. Decimal amounts are
// compared numerically so "500" and "500.00" are equal.
func (g SavingsGoal) Equal(other SavingsGoal) bool {
	if g.Name != other.Name || g.Status != other.Status {
		return false
	}
	if !g.TargetAmount.Equal(other.TargetAmount) || !g.CurrentAmount.Equal(other.CurrentAmount) {
		return false
	}

	switch {
	case g.Deadline == nil && other.Deadline == nil:
		return true
	case g.Deadline == nil || other.Deadline == nil:
		return false
	default:
		return g.Deadline.Equal(other.Deadline.Time)
	}
}

// Clone returns a copy that shares no pointers with g.
func (g SavingsGoal) Clone() SavingsGoal {
	if g.Deadline != nil {
		d := *g.Deadline
		g.Deadline = &d
	}
	return g
}

// Reached reports whether the saved amount covers the target.
func (g SavingsGoal) Reached() bool {
	return g.TargetAmount.IsPositive() && g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// Normalize trims the name, defaults an empty status to active and marks an
// active goal completed once it is reached.
func (g SavingsGoal) Normalize() SavingsGoal {
	g.Name = strings.TrimSpace(g.Name)
	if g.Status == "" {
		g.Status = GoalStatusActive
	}
	if g.Status == GoalStatusActive && g.Reached() {
		g.Status = GoalStatusCompleted
	}
	return g
}

// GoalPatch is a partial update of a savings goal. Only non-nil fields are
// applied.
type GoalPatch struct {
	Name          *string          `json:"name,omitempty"`
	TargetAmount  *decimal.Decimal `json:"targetAmount,omitempty"`
	CurrentAmount *decimal.Decimal `json:"currentAmount,omitempty"`
	Deadline      *Date            `json:"deadline,omitempty"`
	Status        *GoalStatus      `json:"status,omitempty"`
}

// IsEmpty reports whether the patch carries no fields.
func (p GoalPatch) IsEmpty() bool {
	return p.Name == nil &&
		p.TargetAmount == nil &&
		p.CurrentAmount == nil &&
		p.Deadline == nil &&
		p.Status == nil
}

// Apply merges the non-nil fields of the patch into goal and returns the
// result. goal itself is not modified.
func (p GoalPatch) Apply(goal SavingsGoal) SavingsGoal {
	if p.Name != nil {
		goal.Name = *p.Name
	}
	if p.TargetAmount != nil {
		goal.TargetAmount = *p.TargetAmount
	}
	if p.CurrentAmount != nil {
		goal.CurrentAmount = *p.CurrentAmount
	}
	if p.Deadline != nil {
		d := *p.Deadline
		goal.Deadline = &d
	}
	if p.Status != nil {
		goal.Status = *p.Status
	}
	return goal
}

// Contribution adds Amount to the current amount of a goal.
type Contribution struct {
	Amount decimal.Decimal `json:"amount"`
}
