// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-goal-keeper/internal/adapter"
	"github.com/MKhiriev/go-goal-keeper/internal/logger"
	"github.com/MKhiriev/go-goal-keeper/internal/metrics"
	"github.com/MKhiriev/go-goal-keeper/models"
)

// syncCoordinator runs push then pull for every registered collection.
// mu keeps at most one cycle in flight; later callers wait for it.
type syncCoordinator struct {
	mu      sync.Mutex
	syncers []CollectionSyncer
	metrics *metrics.SyncMetrics
	now     func() time.Time
}

// NewSyncCoordinator registers syncers in the order they are synced. m may
// be nil.
func NewSyncCoordinator(m *metrics.SyncMetrics, syncers ...CollectionSyncer) SyncCoordinator {
	return &syncCoordinator{
		syncers: syncers,
		metrics: m,
		now:     time.Now,
	}
}

// RunSyncCycle pushes every collection, then pulls every collection.
//
// An invalid session is reported as unauthorized without any remote call.
// [adapter.ErrUnauthorized] from any phase aborts the rest of the cycle.
// Other errors end only the phase of that collection.
func (c *syncCoordinator) RunSyncCycle(ctx context.Context, session models.Session) (report models.SyncReport) {
	c.mu.Lock()
	defer c.mu.Unlock()

	log := logger.FromContext(ctx)

	report = models.SyncReport{OwnerID: session.OwnerID, StartedAt: c.now()}
	defer func() {
		report.Duration = c.now().Sub(report.StartedAt)
		c.metrics.ObserveCycle(report)

		event := log.Info()
		if !report.OK() {
			event = log.Warn().AnErr("cycle_error", report.Err)
		}
		event.
			Str("func", "syncCoordinator.RunSyncCycle").
			Int64("owner_id", report.OwnerID).
			Dur("duration", report.Duration).
			Bool("unauthorized", report.Unauthorized).
			Msg("sync cycle finished")
	}()

	if !session.Valid() {
		report.Unauthorized = true
		report.Err = fmt.Errorf("%w: %w", ErrNoSession, adapter.ErrUnauthorized)
		return report
	}

	report.Collections = make([]models.CollectionReport, len(c.syncers))
	for i, s := range c.syncers {
		report.Collections[i].Collection = s.Name()
	}

	for i, s := range c.syncers {
		push, err := runPhase(ctx, session, s.Push)
		report.Collections[i].Push = push
		report.Collections[i].PushErr = err
		if c.abort(ctx, &report, s.Name(), "push", err) {
			return report
		}
	}

	for i, s := range c.syncers {
		pull, err := runPhase(ctx, session, s.Pull)
		report.Collections[i].Pull = pull
		report.Collections[i].PullErr = err
		if c.abort(ctx, &report, s.Name(), "pull", err) {
			return report
		}
	}

	return report
}

// abort logs a phase error and reports whether the cycle must stop.
func (c *syncCoordinator) abort(ctx context.Context, report *models.SyncReport, collection, phase string, err error) bool {
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncCoordinator.RunSyncCycle").
			Str("collection", collection).
			Str("phase", phase).
			Msg("sync phase failed")
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		report.Unauthorized = true
		report.Err = err
		return true
	case ctx.Err() != nil:
		report.Err = ctx.Err()
		return true
	}
	return false
}

// runPhase calls fn and converts a panic into ErrPhasePanic.
func runPhase[R any](ctx context.Context, session models.Session, fn func(context.Context, models.Session) (R, error)) (result R, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPhasePanic, r)
		}
	}()

	return fn(ctx, session)
}
