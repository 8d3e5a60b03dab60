package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-goal-keeper/internal/config"
	"github.com/MKhiriev/go-goal-keeper/internal/logger"
	"github.com/MKhiriev/go-goal-keeper/models"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return zerolog.Nop().WithContext(context.Background())
}

// newSQLiteDB открывает отдельную in-memory базу на каждый тест.
func newSQLiteDB(t *testing.T) *DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())

	db, err := NewConnectSQLite(testContext(), config.ClientStorage{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate(testContext()))
	return db
}

func newGoalsRepo(t *testing.T) *syncRepository[models.SavingsGoal] {
	t.Helper()
	return NewSyncRepository(newSQLiteDB(t), GoalsTable, logger.Nop()).(*syncRepository[models.SavingsGoal])
}

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newMockGoalsRepo(t *testing.T) (*syncRepository[models.SavingsGoal], sqlmock.Sqlmock) {
	t.Helper()
	conn, mock := newTestDB(t)
	repo := NewSyncRepository(newDB(conn, logger.Nop()), GoalsTable, logger.Nop()).(*syncRepository[models.SavingsGoal])
	return repo, mock
}

func trip() models.SavingsGoal {
	deadline := models.NewDate(2026, time.December, 31)
	return models.SavingsGoal{
		Name:          "Trip",
		TargetAmount:  decimal.NewFromInt(1000),
		CurrentAmount: decimal.Zero,
		Deadline:      &deadline,
		Status:        models.GoalStatusActive,
	}
}

func strPtr(s string) *string { return &s }
