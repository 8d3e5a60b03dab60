package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-goal-keeper/internal/adapter"
	"github.com/MKhiriev/go-goal-keeper/internal/logger"
	"github.com/MKhiriev/go-goal-keeper/internal/store"
	"github.com/MKhiriev/go-goal-keeper/models"
)

type clientGoalService struct {
	repo   store.SyncRepository[models.SavingsGoal]
	remote adapter.RemoteCollection[models.SavingsGoal]

	// onMutation is called after every successful local write, typically to
	// trigger a sync.
	onMutation func()

	deletes sync.WaitGroup
}

// GoalServiceOption configures the client goal service.
type GoalServiceOption func(*clientGoalService)

// WithOnMutation registers fn to run after every successful local write.
func WithOnMutation(fn func()) GoalServiceOption {
	return func(s *clientGoalService) {
		s.onMutation = fn
	}
}

// NewClientGoalService constructs the local-first goal service. remote is
// only used for background deletes and may be nil.
func NewClientGoalService(repo store.SyncRepository[models.SavingsGoal], remote adapter.RemoteCollection[models.SavingsGoal], opts ...GoalServiceOption) GoalService {
	s := &clientGoalService{repo: repo, remote: remote}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *clientGoalService) Create(ctx context.Context, ownerID int64, goal models.SavingsGoal) (models.LocalRecord[models.SavingsGoal], error) {
	goal = goal.Normalize()

	localID, err := s.repo.Insert(ctx, ownerID, goal)
	if err != nil {
		return models.LocalRecord[models.SavingsGoal]{}, storageError("insert goal", err)
	}
	s.mutated()

	record, err := s.repo.Get(ctx, localID)
	if err != nil {
		return models.LocalRecord[models.SavingsGoal]{}, storageError("load created goal", err)
	}
	return record, nil
}

// Update applies the non-nil fields of patch. An active goal whose amounts
// now reach the target is completed in the same write.
func (s *clientGoalService) Update(ctx context.Context, ownerID, localID int64, patch models.GoalPatch) (models.LocalRecord[models.SavingsGoal], error) {
	current, err := s.owned(ctx, ownerID, localID)
	if err != nil {
		return models.LocalRecord[models.SavingsGoal]{}, err
	}

	if patch.Name != nil {
		name := models.SavingsGoal{Name: *patch.Name}.Normalize().Name
		patch.Name = &name
	}

	merged := patch.Apply(current.Payload)
	if patch.Status == nil && merged.Status == models.GoalStatusActive && merged.Reached() {
		completed := models.GoalStatusCompleted
		patch.Status = &completed
	}

	if err = s.repo.Update(ctx, localID, store.GoalPatchFields(patch)); err != nil {
		return models.LocalRecord[models.SavingsGoal]{}, storageError("update goal", err)
	}
	s.mutated()

	record, err := s.repo.Get(ctx, localID)
	if err != nil {
		return models.LocalRecord[models.SavingsGoal]{}, storageError("load updated goal", err)
	}
	return record, nil
}

// Contribute adds the amount to the current amount in one read-modify-write.
func (s *clientGoalService) Contribute(ctx context.Context, ownerID, localID int64, contribution models.Contribution) (models.LocalRecord[models.SavingsGoal], error) {
	if _, err := s.owned(ctx, ownerID, localID); err != nil {
		return models.LocalRecord[models.SavingsGoal]{}, err
	}

	record, err := s.repo.Mutate(ctx, localID, func(goal *models.SavingsGoal) error {
		if goal.Status == models.GoalStatusArchived {
			return ErrGoalArchived
		}
		goal.CurrentAmount = goal.CurrentAmount.Add(contribution.Amount)
		*goal = goal.Normalize()
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrGoalArchived) {
			return models.LocalRecord[models.SavingsGoal]{}, validationError("contribute", err)
		}
		return models.LocalRecord[models.SavingsGoal]{}, storageError("contribute to goal", err)
	}
	s.mutated()

	return record, nil
}

// Delete removes the row locally first. The remote delete is fire-and-forget:
// its failure is only logged.
func (s *clientGoalService) Delete(ctx context.Context, session models.Session, localID int64) error {
	current, err := s.owned(ctx, session.OwnerID, localID)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, localID); err != nil {
		return storageError("delete goal", err)
	}
	s.mutated()

	if current.HasServerID() && s.remote != nil && session.Valid() {
		s.deleteRemote(context.WithoutCancel(ctx), session, localID, *current.ServerID)
	}
	return nil
}

func (s *clientGoalService) deleteRemote(ctx context.Context, session models.Session, localID int64, serverID string) {
	log := logger.FromContext(ctx)

	s.deletes.Add(1)
	go func() {
		defer s.deletes.Done()

		if err := s.remote.Delete(ctx, session, serverID); err != nil {
			log.Warn().Err(err).
				Str("func", "clientGoalService.Delete").
				Int64("local_id", localID).
				Str("server_id", serverID).
				Msg("remote delete failed")
			return
		}
		log.Debug().
			Str("func", "clientGoalService.Delete").
			Str("server_id", serverID).
			Msg("remote delete done")
	}()
}

func (s *clientGoalService) Get(ctx context.Context, ownerID, localID int64) (models.LocalRecord[models.SavingsGoal], error) {
	return s.owned(ctx, ownerID, localID)
}

func (s *clientGoalService) List(ctx context.Context, ownerID int64) ([]models.LocalRecord[models.SavingsGoal], error) {
	records, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, storageError("list goals", err)
	}
	return records, nil
}

func (s *clientGoalService) Wait() {
	s.deletes.Wait()
}

// owned loads localID and hides rows of other owners.
func (s *clientGoalService) owned(ctx context.Context, ownerID, localID int64) (models.LocalRecord[models.SavingsGoal], error) {
	record, err := s.repo.Get(ctx, localID)
	if err != nil {
		return models.LocalRecord[models.SavingsGoal]{}, storageError("load goal", err)
	}
	if record.OwnerID != ownerID {
		return models.LocalRecord[models.SavingsGoal]{}, fmt.Errorf("load goal: %w: local_id=%d", ErrNotFound, localID)
	}
	return record, nil
}

func (s *clientGoalService) mutated() {
	if s.onMutation != nil {
		s.onMutation()
	}
}
