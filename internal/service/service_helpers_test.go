package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-goal-keeper/internal/adapter"
	"github.com/MKhiriev/go-goal-keeper/internal/config"
	"github.com/MKhiriev/go-goal-keeper/internal/logger"
	"github.com/MKhiriev/go-goal-keeper/internal/store"
	"github.com/MKhiriev/go-goal-keeper/models"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const testOwner int64 = 1

var testSession = models.Session{OwnerID: testOwner, Token: "token"}

func testContext() context.Context {
	return zerolog.Nop().WithContext(context.Background())
}

func tripGoal() models.SavingsGoal {
	return models.SavingsGoal{
		Name:          "Trip",
		TargetAmount:  decimal.NewFromInt(1000),
		CurrentAmount: decimal.Zero,
		Status:        models.GoalStatusActive,
	}
}

func namedGoal(name string) models.SavingsGoal {
	g := tripGoal()
	g.Name = name
	return g
}

// newTestStorages открывает настоящую SQLite базу во временном каталоге.
func newTestStorages(t *testing.T) *store.ClientStorages {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "goals.db")

	storages, err := store.NewClientStorages(testContext(), config.ClientStorage{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })
	return storages
}

// memoryRemote: RemoteCollection поверх MemoryCollection с управляемыми
// сбоями: offline, 401, отказ на конкретном имени цели.
type memoryRemote struct {
	goals *store.MemoryCollection[models.SavingsGoal]

	mu           sync.Mutex
	offline      bool
	unauthorized bool
	failNames    map[string]bool
	beforeCreate func()
	calls        map[string]int
	updates      []models.RemoteRecord[models.SavingsGoal]
}

var _ adapter.RemoteCollection[models.SavingsGoal] = (*memoryRemote)(nil)

func newMemoryRemote() *memoryRemote {
	return &memoryRemote{
		goals:     store.NewMemoryCollection[models.SavingsGoal]("g"),
		failNames: make(map[string]bool),
		calls:     make(map[string]int),
	}
}

func (m *memoryRemote) setOffline(v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.offline = v
}

func (m *memoryRemote) callCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

func (m *memoryRemote) check(method, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls[method]++
	switch {
	case m.unauthorized:
		return adapter.ErrUnauthorized
	case m.offline:
		return adapter.ErrNetwork
	case name != "" && m.failNames[name]:
		return adapter.ErrInternalServerError
	}
	return nil
}

func (m *memoryRemote) Name() string { return models.GoalsCollection }

func (m *memoryRemote) List(ctx context.Context, session models.Session) ([]models.RemoteRecord[models.SavingsGoal], error) {
	if err := m.check("List", ""); err != nil {
		return nil, err
	}
	return m.goals.List(ctx, session.OwnerID), nil
}

func (m *memoryRemote) Create(ctx context.Context, session models.Session, payload models.SavingsGoal) (string, error) {
	if err := m.check("Create", payload.Name); err != nil {
		return "", err
	}
	if m.beforeCreate != nil {
		m.beforeCreate()
	}
	return m.goals.Create(ctx, session.OwnerID, payload).ServerID, nil
}

func (m *memoryRemote) Update(ctx context.Context, session models.Session, serverID string, payload models.SavingsGoal) error {
	if err := m.check("Update", payload.Name); err != nil {
		return err
	}
	record, err := m.goals.Update(ctx, session.OwnerID, serverID, func(p *models.SavingsGoal) error {
		*p = payload
		return nil
	})
	if err != nil {
		return adapter.ErrNotFound
	}

	m.mu.Lock()
	m.updates = append(m.updates, record)
	m.mu.Unlock()
	return nil
}

func (m *memoryRemote) Delete(ctx context.Context, session models.Session, serverID string) error {
	if err := m.check("Delete", ""); err != nil {
		return err
	}
	if err := m.goals.Delete(ctx, session.OwnerID, serverID); err != nil {
		return adapter.ErrNotFound
	}
	return nil
}

// remoteRecord возвращает запись сервера по serverID.
func (m *memoryRemote) remoteRecord(t *testing.T, serverID string) models.RemoteRecord[models.SavingsGoal] {
	t.Helper()
	for _, r := range m.goals.List(testContext(), testOwner) {
		if r.ServerID == serverID {
			return r
		}
	}
	t.Fatalf("remote record %s not found", serverID)
	return models.RemoteRecord[models.SavingsGoal]{}
}

// engine собирает весь клиентский стек поверх настоящей SQLite.
type engine struct {
	storages    *store.ClientStorages
	remote      *memoryRemote
	goals       GoalService
	syncer      CollectionSyncer
	coordinator SyncCoordinator
}

func newEngine(t *testing.T) *engine {
	t.Helper()
	storages := newTestStorages(t)
	remote := newMemoryRemote()
	services := NewClientServices(storages, remote, nil)

	return &engine{
		storages:    storages,
		remote:      remote,
		goals:       services.GoalService,
		syncer:      NewCollectionSyncer(storages.Goals, remote),
		coordinator: services.SyncCoordinator,
	}
}

func (e *engine) local(t *testing.T, localID int64) models.LocalRecord[models.SavingsGoal] {
	t.Helper()
	record, err := e.storages.Goals.Get(testContext(), localID)
	require.NoError(t, err)
	return record
}

func future(d time.Duration) time.Time {
	return time.Now().Add(d).UTC()
}
