// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-goal-keeper/internal/logger"
	"github.com/MKhiriev/go-goal-keeper/internal/service"
	"github.com/MKhiriev/go-goal-keeper/models"
)

// SyncWorker runs sync cycles off the caller's goroutine. Cycles are started
// by [SyncWorker.Trigger] and, when an interval is set, by a ticker.
// Triggers that arrive while a cycle is pending collapse into one.
type SyncWorker struct {
	coordinator service.SyncCoordinator
	sessions    SessionSource
	interval    time.Duration
	trigger     chan struct{}
	onReport    func(models.SyncReport)
	logger      *logger.Logger
}

// SyncWorkerOption configures a SyncWorker.
type SyncWorkerOption func(*SyncWorker)

// WithReportHandler registers fn to receive every finished cycle report.
func WithReportHandler(fn func(models.SyncReport)) SyncWorkerOption {
	return func(w *SyncWorker) {
		w.onReport = fn
	}
}

// NewSyncWorker constructs the worker. interval <= 0 disables the ticker.
func NewSyncWorker(coordinator service.SyncCoordinator, sessions SessionSource, interval time.Duration, logger *logger.Logger, opts ...SyncWorkerOption) *SyncWorker {
	w := &SyncWorker{
		coordinator: coordinator,
		sessions:    sessions,
		interval:    interval,
		trigger:     make(chan struct{}, 1),
		logger:      logger,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Trigger requests a cycle without blocking.
func (w *SyncWorker) Trigger() {
	select {
	case w.trigger <- struct{}{}:
	default:
	}
}

// Run serves triggers and ticks until ctx is cancelled.
func (w *SyncWorker) Run(ctx context.Context) {
	var tick <-chan time.Time
	if w.interval > 0 {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	w.logger.Info().
		Str("func", "SyncWorker.Run").
		Dur("interval", w.interval).
		Msg("sync worker started")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Str("func", "SyncWorker.Run").Msg("sync worker stopped")
			return
		case <-w.trigger:
			w.SyncNow(ctx)
		case <-tick:
			w.SyncNow(ctx)
		}
	}
}

// SyncNow runs one cycle synchronously with the session current at call
// time. A missing session yields an unauthorized report.
func (w *SyncWorker) SyncNow(ctx context.Context) models.SyncReport {
	ctx = w.logger.WithContext(ctx)

	session, err := w.sessions.Current(ctx)
	if err != nil {
		w.logger.Debug().Err(err).Str("func", "SyncWorker.SyncNow").Msg("no session, cycle will be rejected")
		session = models.Session{}
	}

	report := w.coordinator.RunSyncCycle(ctx, session)
	if w.onReport != nil {
		w.onReport(report)
	}
	return report
}
