// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the goal keeper.
//
// On the client side [GoalService] is the mutation API the user drives; it
// writes synchronously to the local replica and never waits for the network.
// [CollectionSyncer] pushes and pulls one collection and [SyncCoordinator]
// runs both phases for every registered collection.
//
// On the server side [TokenService] issues and verifies bearer tokens and
// [RemoteGoalService] backs the stub goals API.
package service

import (
	"context"

	"github.com/MKhiriev/go-goal-keeper/models"
)

// GoalService is the caller-facing API of the local goal collection. Every
// method is scoped by the owner; a record of another owner is reported as
// [ErrNotFound].
type GoalService interface {
	Create(ctx context.Context, ownerID int64, goal models.SavingsGoal) (models.LocalRecord[models.SavingsGoal], error)
	Update(ctx context.Context, ownerID, localID int64, patch models.GoalPatch) (models.LocalRecord[models.SavingsGoal], error)
	Contribute(ctx context.Context, ownerID, localID int64, contribution models.Contribution) (models.LocalRecord[models.SavingsGoal], error)

	// Delete removes the row locally and, when it has a server identity and
	// session is valid, deletes it remotely in the background.
	Delete(ctx context.Context, session models.Session, localID int64) error

	Get(ctx context.Context, ownerID, localID int64) (models.LocalRecord[models.SavingsGoal], error)
	List(ctx context.Context, ownerID int64) ([]models.LocalRecord[models.SavingsGoal], error)

	// Wait blocks until background remote deletes have finished.
	Wait()
}

// GoalServiceWrapper decorates a GoalService with additional behavior such
// as validation.
type GoalServiceWrapper interface {
	Wrap(GoalService) GoalService
}

// CollectionSyncer synchronizes one collection with its remote counterpart.
type CollectionSyncer interface {
	Name() string
	Push(ctx context.Context, session models.Session) (models.PushReport, error)
	Pull(ctx context.Context, session models.Session) (models.PullReport, error)
}

// SyncCoordinator runs sync cycles. RunSyncCycle never fails the caller:
// errors are logged and recorded in the report.
type SyncCoordinator interface {
	RunSyncCycle(ctx context.Context, session models.Session) models.SyncReport
}

// TokenService issues and verifies bearer tokens of the stub goals API.
type TokenService interface {
	CreateToken(ctx context.Context, ownerID int64) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// RemoteGoalService is the server side of the goals wire contract.
type RemoteGoalService interface {
	List(ctx context.Context, ownerID int64) ([]models.RemoteRecord[models.SavingsGoal], error)
	Create(ctx context.Context, req models.CreateRequest[models.SavingsGoal]) (models.RemoteRecord[models.SavingsGoal], error)
	// Update applies body as a partial JSON document over the stored payload.
	Update(ctx context.Context, ownerID int64, serverID string, body []byte) (models.RemoteRecord[models.SavingsGoal], error)
	Delete(ctx context.Context, ownerID int64, serverID string) error
}
