package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/MKhiriev/go-goal-keeper/internal/config"
	handlerhttp "github.com/MKhiriev/go-goal-keeper/internal/handler/http"
	"github.com/MKhiriev/go-goal-keeper/internal/logger"
	"github.com/MKhiriev/go-goal-keeper/internal/service"
	"github.com/MKhiriev/go-goal-keeper/internal/store"
	"github.com/MKhiriev/go-goal-keeper/models"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

type cliEnv struct {
	t      *testing.T
	url    string
	dir    string
	goals  *store.MemoryCollection[models.SavingsGoal]
	tokens service.TokenService
}

func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()

	cfg := config.ServerConfig{TokenSignKey: "secret", TokenIssuer: "goal-keeper", TokenDuration: time.Hour}
	goals := store.NewMemoryCollection[models.SavingsGoal]("g")
	services := service.NewServices(goals, cfg, logger.Nop())
	srv := httptest.NewServer(handlerhttp.NewHandler(services, logger.Nop()).Init())
	t.Cleanup(srv.Close)

	return &cliEnv{t: t, url: srv.URL, dir: t.TempDir(), goals: goals, tokens: services.TokenService}
}

// run выполняет одну команду с общими флагами окружения.
func (e *cliEnv) run(args ...string) (string, error) {
	e.t.Helper()

	base := []string{
		"--server", e.url,
		"--request-timeout", "2s",
		"--db", filepath.Join(e.dir, "client.db"),
		"--log-file", filepath.Join(e.dir, "client.log"),
	}

	var out bytes.Buffer
	root := NewRootCommand(models.NewAppBuildInfo("1.0.0", "2026-10-01", "abc"))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(base, args...))

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func (e *cliEnv) login(ownerID int64) {
	e.t.Helper()
	token, err := e.tokens.CreateToken(context.Background(), ownerID)
	require.NoError(e.t, err)

	out, err := e.run("login", token.String())
	require.NoError(e.t, err)
	assert.Contains(e.t, out, "logged in as owner "+strconv.FormatInt(ownerID, 10))
}

func (e *cliEnv) listJSON() []goalView {
	e.t.Helper()
	out, err := e.run("goals", "list", "--json")
	require.NoError(e.t, err)

	var views []goalView
	require.NoError(e.t, json.Unmarshal([]byte(out), &views))
	return views
}

// ── commands ──

func TestGoals_RequireLogin(t *testing.T) {
	env := newCLIEnv(t)

	_, err := env.run("goals", "list")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestGoals_AddUpdateContributeDelete(t *testing.T) {
	env := newCLIEnv(t)
	env.login(1)

	out, err := env.run("goals", "add", "--name", "Trip", "--target", "1000", "--deadline", "2027-06-01")
	require.NoError(t, err)
	assert.Contains(t, out, "created goal 1")
	assert.Contains(t, out, "local only")

	_, err = env.run("goals", "update", "1", "--name", "Trip to Rome")
	require.NoError(t, err)

	_, err = env.run("goals", "contribute", "1", "250.50")
	require.NoError(t, err)

	views := env.listJSON()
	require.Len(t, views, 1)
	assert.Equal(t, "Trip to Rome", views[0].Name)
	assert.Equal(t, "250.5", views[0].CurrentAmount)
	assert.Equal(t, "2027-06-01", views[0].Deadline)
	assert.True(t, views[0].Dirty)

	out, err = env.run("goals", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Trip to Rome")

	_, err = env.run("goals", "delete", "1")
	require.NoError(t, err)
	assert.Empty(t, env.listJSON())
}

func TestGoals_InvalidInput(t *testing.T) {
	env := newCLIEnv(t)
	env.login(1)

	_, err := env.run("goals", "add", "--name", "Trip", "--target", "lots")
	assert.Error(t, err)

	_, err = env.run("goals", "add", "--name", "Trip", "--target", "-5")
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = env.run("goals", "contribute", "abc", "5")
	assert.Error(t, err)

	_, err = env.run("goals", "contribute", "99", "5")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestSync_PushesAndPulls(t *testing.T) {
	env := newCLIEnv(t)
	env.login(1)

	_, err := env.run("goals", "add", "--name", "Trip", "--target", "1000")
	require.NoError(t, err)

	out, err := env.run("sync")
	require.NoError(t, err)
	assert.Contains(t, out, "sync finished")
	assert.Contains(t, out, "created 1")

	remote := env.goals.List(context.Background(), 1)
	require.Len(t, remote, 1)
	assert.Equal(t, "Trip", remote[0].Payload.Name)

	// правка с другого устройства приезжает при следующем sync
	_, err = env.goals.Update(context.Background(), 1, remote[0].ServerID, func(g *models.SavingsGoal) error {
		g.CurrentAmount = decimal.NewFromInt(100)
		return nil
	})
	require.NoError(t, err)

	out, err = env.run("sync", "--json")
	require.NoError(t, err)
	var report reportView
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.True(t, report.OK)

	views := env.listJSON()
	require.Len(t, views, 1)
	assert.Equal(t, "100", views[0].CurrentAmount)
	assert.False(t, views[0].Dirty)
	assert.Equal(t, remote[0].ServerID, views[0].ServerID)
}

func TestSync_WithoutSession(t *testing.T) {
	env := newCLIEnv(t)

	out, err := env.run("sync")
	assert.ErrorIs(t, err, ErrSyncIncomplete)
	assert.Contains(t, out, "sync skipped")
}

func TestLogout_StopsSync(t *testing.T) {
	env := newCLIEnv(t)
	env.login(1)

	_, err := env.run("logout")
	require.NoError(t, err)

	_, err = env.run("goals", "list")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestVersion(t *testing.T) {
	env := newCLIEnv(t)

	out, err := env.run("version")
	require.NoError(t, err)
	assert.Contains(t, out, "1.0.0")
	assert.Contains(t, out, "abc")
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	printTable(&buf, []string{"ID", "Name"}, [][]string{{"1", "Trip"}, {"22", "Car"}})

	assert.Equal(t, "  ID  Name\n  --  ----\n  1   Trip\n  22  Car\n", buf.String())
}
