package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-goal-keeper/internal/config"
	"github.com/MKhiriev/go-goal-keeper/internal/logger"
	"github.com/MKhiriev/go-goal-keeper/models"
)

// ClientStorages groups the client-side repositories.
type ClientStorages struct {
	db *DB

	// Goals is the local replica of the savings-goal collection.
	Goals SyncRepository[models.SavingsGoal]

	// Sessions persists the credential context handed over at login.
	Sessions SessionRepository
}

// NewClientStorages opens the SQLite database named by cfg.DSN, creating the
// file if needed, applies migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Str("func", "NewClientStorages").Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		db:       db,
		Goals:    NewSyncRepository(db, GoalsTable, logger),
		Sessions: NewSessionRepository(db, logger),
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
