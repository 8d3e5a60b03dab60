package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-goal-keeper/internal/adapter"
	"github.com/MKhiriev/go-goal-keeper/internal/config"
	"github.com/MKhiriev/go-goal-keeper/internal/logger"
	"github.com/MKhiriev/go-goal-keeper/internal/metrics"
	"github.com/MKhiriev/go-goal-keeper/internal/service"
	"github.com/MKhiriev/go-goal-keeper/internal/store"
	"github.com/MKhiriev/go-goal-keeper/internal/utils"
	"github.com/MKhiriev/go-goal-keeper/internal/workers"
	"github.com/MKhiriev/go-goal-keeper/models"
	"github.com/prometheus/client_golang/prometheus"
)

type App struct {
	storages *store.ClientStorages
	services *service.ClientServices
	worker   *workers.SyncWorker
	registry *prometheus.Registry

	logger *logger.Logger
}

// AppOption customizes an [App].
type AppOption func(*appOptions)

type appOptions struct {
	onReport func(models.SyncReport)
}

// WithReportHandler receives every report of a cycle run by the worker.
func WithReportHandler(fn func(models.SyncReport)) AppOption {
	return func(o *appOptions) {
		o.onReport = fn
	}
}

// NewApp opens the local replica and wires the engine. Every local mutation
// triggers the worker; cycles only run while [App.Run] is active.
func NewApp(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger, opts ...AppOption) (*App, error) {
	var o appOptions
	for _, opt := range opts {
		opt(&o)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	goals, err := adapter.NewHTTPCollection[models.SavingsGoal](cfg.Adapter, models.GoalsCollection, storages.Sessions, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create goals adapter: %w", err)
	}

	registry := prometheus.NewRegistry()
	syncMetrics := metrics.NewSyncMetrics(registry)

	a := &App{
		storages: storages,
		registry: registry,
		logger:   logger,
	}

	a.services = service.NewClientServices(storages, goals, syncMetrics,
		service.WithOnMutation(func() { a.worker.Trigger() }),
	)
	a.worker = workers.NewSyncWorker(a.services.SyncCoordinator, storages.Sessions, cfg.Workers.SyncInterval, logger,
		workers.WithReportHandler(o.onReport),
	)

	return a, nil
}

// Goals returns the caller-facing goal API.
func (a *App) Goals() service.GoalService {
	return a.services.GoalService
}

// Registry exposes the sync metrics of this process.
func (a *App) Registry() *prometheus.Registry {
	return a.registry
}

// Login stores a session for the bearer token. The owner id is read from the
// token subject; the signature is checked by the server on use.
func (a *App) Login(ctx context.Context, token string) (models.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return models.Session{}, ErrEmptyToken
	}

	ownerID, err := utils.ParseOwnerIDFromJWT(token)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidOwner, err)
	}
	if ownerID <= 0 {
		return models.Session{}, ErrInvalidOwner
	}

	session := models.Session{OwnerID: ownerID, Token: token, SavedAt: time.Now().UTC()}
	if err = a.storages.Sessions.Save(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("save session: %w", err)
	}

	a.logger.Info().Int64("owner_id", ownerID).Msg("session saved")
	return session, nil
}

// Logout forgets the stored session. Local data is kept.
func (a *App) Logout(ctx context.Context) error {
	return a.storages.Sessions.Invalidate(ctx)
}

// Session returns the stored session. A missing session is reported as
// [store.ErrNoSession].
func (a *App) Session(ctx context.Context) (models.Session, error) {
	return a.storages.Sessions.Current(ctx)
}

// OwnerID returns the owner of the stored session.
func (a *App) OwnerID(ctx context.Context) (int64, error) {
	session, err := a.Session(ctx)
	if err != nil {
		return 0, err
	}
	if session.OwnerID <= 0 {
		return 0, store.ErrNoSession
	}
	return session.OwnerID, nil
}

// SyncNow runs one cycle on the caller's goroutine.
func (a *App) SyncNow(ctx context.Context) models.SyncReport {
	return a.worker.SyncNow(ctx)
}

// Run starts a first cycle and keeps the worker serving triggers and ticks
// until ctx is done.
func (a *App) Run(ctx context.Context) error {
	a.worker.Trigger()
	workers.NewWorkers(a.worker).Run(ctx)
	return nil
}

// Close waits for fire-and-forget remote deletes and closes the replica.
func (a *App) Close() error {
	a.services.GoalService.Wait()
	return a.storages.Close()
}
