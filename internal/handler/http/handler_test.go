package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-goal-keeper/internal/config"
	"github.com/MKhiriev/go-goal-keeper/internal/logger"
	"github.com/MKhiriev/go-goal-keeper/internal/metrics"
	"github.com/MKhiriev/go-goal-keeper/internal/service"
	"github.com/MKhiriev/go-goal-keeper/internal/store"
	"github.com/MKhiriev/go-goal-keeper/internal/utils"
	"github.com/MKhiriev/go-goal-keeper/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testServerConfig = config.ServerConfig{
	HTTPAddress:   ":0",
	TokenSignKey:  "secret",
	TokenIssuer:   "goal-keeper",
	TokenDuration: time.Hour,
}

type testAPI struct {
	server   *httptest.Server
	services *service.Services
	goals    *store.MemoryCollection[models.SavingsGoal]
	registry *prometheus.Registry
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	goals := store.NewMemoryCollection[models.SavingsGoal]("g")
	services := service.NewServices(goals, testServerConfig, logger.Nop())
	registry := prometheus.NewRegistry()

	h := NewHandler(services, logger.Nop(),
		WithMetrics(metrics.NewHTTPMetrics(registry), registry),
		WithBuildInfo(models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123")),
	)

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	return &testAPI{server: srv, services: services, goals: goals, registry: registry}
}

func (a *testAPI) token(t *testing.T, ownerID int64) string {
	t.Helper()
	token, err := a.services.TokenService.CreateToken(t.Context(), ownerID)
	require.NoError(t, err)
	return token.SignedString
}

func (a *testAPI) do(t *testing.T, method, path, token, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(t.Context(), method, a.server.URL+path, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ── auth ──

func TestAuth_Rejections(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "wrong scheme", header: "Basic abc"},
		{name: "garbage token", header: "Bearer garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, api.server.URL+"/goals", nil)
			require.NoError(t, err)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := api.server.Client().Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

// ── goals collection ──

func TestGoals_CreateThenList(t *testing.T) {
	api := newTestAPI(t)
	token := api.token(t, 1)

	resp := api.do(t, http.MethodPost, "/goals", token,
		`{"ownerId":1,"name":"Trip","targetAmount":"1000","currentAmount":"0","status":"active"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[models.CreateResponse](t, resp)
	assert.Equal(t, "g1", created.ServerID)

	resp = api.do(t, http.MethodGet, "/goals?ownerId=1", token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	records := decodeBody[[]models.RemoteRecord[models.SavingsGoal]](t, resp)

	require.Len(t, records, 1)
	assert.Equal(t, "g1", records[0].ServerID)
	assert.Equal(t, int64(1), records[0].OwnerID)
	assert.Equal(t, "Trip", records[0].Payload.Name)
	assert.False(t, records[0].UpdatedAt.IsZero())
}

func TestGoals_CreateFillsOwnerFromToken(t *testing.T) {
	api := newTestAPI(t)

	resp := api.do(t, http.MethodPost, "/goals", api.token(t, 7), `{"name":"Car","targetAmount":"5000"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	records := api.goals.List(t.Context(), 7)
	require.Len(t, records, 1)
	assert.Equal(t, models.GoalStatusActive, records[0].Payload.Status)
}

func TestGoals_OwnerMismatch(t *testing.T) {
	api := newTestAPI(t)
	token := api.token(t, 1)

	resp := api.do(t, http.MethodPost, "/goals", token, `{"ownerId":2,"name":"Trip","targetAmount":"10"}`)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = api.do(t, http.MethodGet, "/goals?ownerId=2", token, "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = api.do(t, http.MethodGet, "/goals?ownerId=abc", token, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGoals_CreateValidation(t *testing.T) {
	api := newTestAPI(t)
	token := api.token(t, 1)

	resp := api.do(t, http.MethodPost, "/goals", token, `{"name":"","targetAmount":"10"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = api.do(t, http.MethodPost, "/goals", token, `not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGoals_UpdateKeepsAbsentFields(t *testing.T) {
	api := newTestAPI(t)
	token := api.token(t, 1)
	record := api.goals.Create(t.Context(), 1, models.SavingsGoal{
		Name:         "Trip",
		TargetAmount: decimal.NewFromInt(1000),
		Status:       models.GoalStatusActive,
	})

	resp := api.do(t, http.MethodPut, "/goals/"+record.ServerID, token, `{"currentAmount":"250"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody[models.RemoteRecord[models.SavingsGoal]](t, resp)

	assert.Equal(t, "Trip", updated.Payload.Name)
	assert.True(t, decimal.NewFromInt(250).Equal(updated.Payload.CurrentAmount))
	// сервер всегда сдвигает updatedAt вперёд
	assert.True(t, updated.UpdatedAt.After(record.UpdatedAt))
}

func TestGoals_UpdateErrors(t *testing.T) {
	api := newTestAPI(t)
	token := api.token(t, 1)
	record := api.goals.Create(t.Context(), 1, models.SavingsGoal{Name: "Trip", TargetAmount: decimal.NewFromInt(10), Status: models.GoalStatusActive})

	resp := api.do(t, http.MethodPut, "/goals/g404", token, `{"name":"x"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = api.do(t, http.MethodPut, "/goals/"+record.ServerID, api.token(t, 2), `{"name":"x"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = api.do(t, http.MethodPut, "/goals/"+record.ServerID, token, `{"status":"lost"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = api.do(t, http.MethodPut, "/goals/"+record.ServerID, token, `[1,2]`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGoals_Delete(t *testing.T) {
	api := newTestAPI(t)
	token := api.token(t, 1)
	record := api.goals.Create(t.Context(), 1, models.SavingsGoal{Name: "Trip", TargetAmount: decimal.NewFromInt(10), Status: models.GoalStatusActive})

	resp := api.do(t, http.MethodDelete, "/goals/"+record.ServerID, token, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, api.goals.List(t.Context(), 1))

	resp = api.do(t, http.MethodDelete, "/goals/"+record.ServerID, token, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ── ambient routes ──

func TestTraceID_EchoedOrGenerated(t *testing.T) {
	api := newTestAPI(t)

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, api.server.URL+"/version", nil)
	require.NoError(t, err)
	req.Header.Set(utils.TraceIDHeader, "trace-1")
	resp, err := api.server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "trace-1", resp.Header.Get(utils.TraceIDHeader))

	resp = api.do(t, http.MethodGet, "/version", "", "")
	assert.NotEmpty(t, resp.Header.Get(utils.TraceIDHeader))
}

func TestVersion(t *testing.T) {
	api := newTestAPI(t)

	resp := api.do(t, http.MethodGet, "/version", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	v := decodeBody[versionResponse](t, resp)

	assert.Equal(t, versionResponse{Version: "1.2.3", Date: "2026-10-01", Commit: "abc123"}, v)
}

func TestMetrics_RecordsRoutePattern(t *testing.T) {
	api := newTestAPI(t)
	token := api.token(t, 1)

	api.do(t, http.MethodPut, "/goals/g1", token, `{"name":"x"}`)
	api.do(t, http.MethodPut, "/goals/g2", token, `{"name":"x"}`)

	count, err := testutil.GatherAndCount(api.registry, "goalkeeper_http_requests_total")
	require.NoError(t, err)
	// оба запроса попадают в одну серию /goals/{serverId}
	assert.Equal(t, 1, count)

	resp := api.do(t, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `route="/goals/{serverId}"`)
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, statusFromError(ErrOwnerMismatch))
	assert.Equal(t, http.StatusNotFound, statusFromError(service.ErrNotFound))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(assert.AnError))
}
