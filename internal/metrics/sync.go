// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the sync engine and the
// stub goals API.
package metrics

import (
	"github.com/MKhiriev/go-goal-keeper/models"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "goalkeeper"

// Cycle results.
const (
	ResultOK           = "ok"
	ResultPartial      = "partial"
	ResultUnauthorized = "unauthorized"
)

// SyncMetrics records sync cycle outcomes.
type SyncMetrics struct {
	cycles        *prometheus.CounterVec
	cycleDuration prometheus.Histogram
	pushed        *prometheus.CounterVec
	pulled        *prometheus.CounterVec
	phaseErrors   *prometheus.CounterVec
}

// NewSyncMetrics creates the sync collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewSyncMetrics(reg prometheus.Registerer) *SyncMetrics {
	m := &SyncMetrics{
		cycles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "cycles_total",
			Help:      "Sync cycles by result.",
		}, []string{"result"}),
		cycleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "cycle_duration_seconds",
			Help:      "Wall time of one sync cycle.",
			Buckets:   prometheus.DefBuckets,
		}),
		pushed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "pushed_records_total",
			Help:      "Dirty records handled by push, by outcome.",
		}, []string{"collection", "outcome"}),
		pulled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "pulled_records_total",
			Help:      "Remote records handled by pull, by outcome.",
		}, []string{"collection", "outcome"}),
		phaseErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "phase_errors_total",
			Help:      "Push or pull phases that ended with an error.",
		}, []string{"collection", "phase"}),
	}

	if reg != nil {
		reg.MustRegister(m.cycles, m.cycleDuration, m.pushed, m.pulled, m.phaseErrors)
	}
	return m
}

// ObserveCycle records one finished cycle. Safe on a nil receiver.
func (m *SyncMetrics) ObserveCycle(report models.SyncReport) {
	if m == nil {
		return
	}

	m.cycles.WithLabelValues(cycleResult(report)).Inc()
	m.cycleDuration.Observe(report.Duration.Seconds())

	for _, c := range report.Collections {
		m.pushed.WithLabelValues(c.Collection, "created").Add(float64(c.Push.Created))
		m.pushed.WithLabelValues(c.Collection, "updated").Add(float64(c.Push.Updated))
		m.pushed.WithLabelValues(c.Collection, "failed").Add(float64(c.Push.Failed))
		m.pushed.WithLabelValues(c.Collection, "still_dirty").Add(float64(c.Push.StillDirty))
		m.pushed.WithLabelValues(c.Collection, "discarded").Add(float64(c.Push.Discarded))
		m.pushed.WithLabelValues(c.Collection, "missing").Add(float64(c.Push.Missing))

		m.pulled.WithLabelValues(c.Collection, models.ApplyInserted.String()).Add(float64(c.Pull.Inserted))
		m.pulled.WithLabelValues(c.Collection, models.ApplyUpdated.String()).Add(float64(c.Pull.Updated))
		m.pulled.WithLabelValues(c.Collection, models.ApplyUnchanged.String()).Add(float64(c.Pull.Unchanged))
		m.pulled.WithLabelValues(c.Collection, models.ApplyRejected.String()).Add(float64(c.Pull.Rejected))
		m.pulled.WithLabelValues(c.Collection, "skipped").Add(float64(c.Pull.Skipped))

		if c.PushErr != nil {
			m.phaseErrors.WithLabelValues(c.Collection, "push").Inc()
		}
		if c.PullErr != nil {
			m.phaseErrors.WithLabelValues(c.Collection, "pull").Inc()
		}
	}
}

func cycleResult(report models.SyncReport) string {
	switch {
	case report.Unauthorized:
		return ResultUnauthorized
	case report.OK():
		return ResultOK
	default:
		return ResultPartial
	}
}
