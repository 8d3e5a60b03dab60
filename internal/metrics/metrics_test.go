package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-goal-keeper/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── SyncMetrics ──────────────────────────────────────────────────────────────

func TestSyncMetrics_ObserveCycle(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewSyncMetrics(reg)

	m.ObserveCycle(models.SyncReport{
		Duration: 120 * time.Millisecond,
		Collections: []models.CollectionReport{{
			Collection: models.GoalsCollection,
			Push:       models.PushReport{Attempted: 3, Created: 1, Updated: 1, Failed: 1},
			Pull:       models.PullReport{Fetched: 2, Inserted: 1, Unchanged: 1},
		}},
	})
	m.ObserveCycle(models.SyncReport{Unauthorized: true})
	m.ObserveCycle(models.SyncReport{
		Collections: []models.CollectionReport{{Collection: models.GoalsCollection, PullErr: errors.New("disk")}},
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.cycles.WithLabelValues(ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cycles.WithLabelValues(ResultUnauthorized)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cycles.WithLabelValues(ResultPartial)))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.pushed.WithLabelValues(models.GoalsCollection, "created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.pushed.WithLabelValues(models.GoalsCollection, "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.pulled.WithLabelValues(models.GoalsCollection, "inserted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.pulled.WithLabelValues(models.GoalsCollection, "unchanged")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.phaseErrors.WithLabelValues(models.GoalsCollection, "pull")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.phaseErrors.WithLabelValues(models.GoalsCollection, "push")))

	n, err := testutil.GatherAndCount(reg, "goalkeeper_sync_cycle_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSyncMetrics_NilSafe(t *testing.T) {
	var m *SyncMetrics
	assert.NotPanics(t, func() { m.ObserveCycle(models.SyncReport{}) })

	// без регистрации тоже работает
	unregistered := NewSyncMetrics(nil)
	unregistered.ObserveCycle(models.SyncReport{})
	assert.Equal(t, 1.0, testutil.ToFloat64(unregistered.cycles.WithLabelValues(ResultOK)))
}

// ── HTTPMetrics ──────────────────────────────────────────────────────────────

func TestHTTPMetrics_ObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.ObserveRequest("GET", "/goals", 200, 5*time.Millisecond)
	m.ObserveRequest("GET", "/goals", 200, 5*time.Millisecond)
	m.ObserveRequest("PUT", "/goals/{serverId}", 404, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/goals", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("PUT", "/goals/{serverId}", "404")))

	var nilMetrics *HTTPMetrics
	assert.NotPanics(t, func() { nilMetrics.ObserveRequest("GET", "/", 200, 0) })
}
