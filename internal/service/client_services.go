package service

import (
	"github.com/MKhiriev/go-goal-keeper/internal/adapter"
	"github.com/MKhiriev/go-goal-keeper/internal/metrics"
	"github.com/MKhiriev/go-goal-keeper/internal/store"
	"github.com/MKhiriev/go-goal-keeper/models"
)

// ClientServices groups the client-side services.
type ClientServices struct {
	GoalService     GoalService
	SyncCoordinator SyncCoordinator
}

// NewClientServices wires the goal service and the sync coordinator over
// the local storages and the remote goals collection.
func NewClientServices(storages *store.ClientStorages, goals adapter.RemoteCollection[models.SavingsGoal], m *metrics.SyncMetrics, opts ...GoalServiceOption) *ClientServices {
	goalService := NewGoalValidationService().Wrap(NewClientGoalService(storages.Goals, goals, opts...))

	return &ClientServices{
		GoalService:     goalService,
		SyncCoordinator: NewSyncCoordinator(m, NewCollectionSyncer(storages.Goals, goals)),
	}
}
