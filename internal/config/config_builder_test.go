package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func clientFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("client", pflag.ContinueOnError)
	RegisterClientFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func serverFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("server", pflag.ContinueOnError)
	RegisterServerFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LayerPriority проверяет порядок: defaults < json < env < flags.
func TestBuild_LayerPriority(t *testing.T) {
	b := newConfigBuilder()
	b.defaults = &StructuredConfig{
		Adapter: Adapter{HTTPAddress: "default", RequestTimeout: time.Second},
		Log:     Log{Level: "info"},
		Storage: Storage{DB: DB{DSN: "default.db"}},
	}
	b.json = &StructuredConfig{Adapter: Adapter{HTTPAddress: "json"}, Log: Log{Level: "warn"}}
	b.env = &StructuredConfig{Adapter: Adapter{HTTPAddress: "env"}}
	b.flags = &StructuredConfig{Storage: Storage{DB: DB{DSN: "flag.db"}}}

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "env", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "flag.db", cfg.Storage.DB.DSN)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_DefaultsOnly(t *testing.T) {
	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestGetStructuredConfig_AllSources(t *testing.T) {
	path := writeTempJSONConfig(t, `{
		"adapter": {"http_address": "http://json:1", "request_timeout": "3s"},
		"workers": {"sync_interval": "5m"},
		"log": {"level": "warn"}
	}`)

	t.Setenv("CONFIG", path)
	t.Setenv("ADAPTER_ADDRESS", "http://env:2")
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := GetStructuredConfig(clientFlags(t, "--db", "flag.db", "--log-level", "debug"))
	require.NoError(t, err)

	assert.Equal(t, "http://env:2", cfg.Adapter.HTTPAddress, "env перекрывает json")
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout, "json перекрывает defaults")
	assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, "flag.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "debug", cfg.Log.Level, "флаг перекрывает env")
}

func TestGetStructuredConfig_MissingJSONFile(t *testing.T) {
	t.Setenv("CONFIG", filepath.Join(t.TempDir(), "absent.json"))

	_, err := GetStructuredConfig(nil)
	assert.Error(t, err)
}

func TestGetStructuredConfig_BadEnvDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "soon")

	_, err := GetStructuredConfig(nil)
	assert.Error(t, err)
}

// ── role views ────────────────────────────────────────────────────────────────

func TestGetClientConfig(t *testing.T) {
	cfg, err := GetClientConfig(clientFlags(t, "-s", "http://goals.local", "--request-timeout", "2s"))
	require.NoError(t, err)

	assert.Equal(t, "http://goals.local", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "goal-keeper.db", cfg.Storage.DSN)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig { return NewClientConfig(Defaults()) }

	tests := []struct {
		name   string
		mutate func(*ClientConfig)
		want   error
	}{
		{"valid", func(*ClientConfig) {}, nil},
		{"empty dsn", func(c *ClientConfig) { c.Storage.DSN = "" }, ErrInvalidStorageConfigs},
		{"memory dsn", func(c *ClientConfig) { c.Storage.DSN = ":memory:" }, ErrInvalidStorageConfigs},
		{"no address", func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, ErrInvalidAdapterConfigs},
		{"zero timeout", func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, ErrInvalidAdapterConfigs},
		{"negative interval", func(c *ClientConfig) { c.Workers.SyncInterval = -time.Second }, ErrInvalidWorkerConfigs},
		{"zero interval disables ticker", func(c *ClientConfig) { c.Workers.SyncInterval = 0 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGetServerConfig(t *testing.T) {
	_, err := GetServerConfig(serverFlags(t))
	assert.ErrorIs(t, err, ErrInvalidAppConfigs, "без ключа подписи сервер не стартует")

	t.Setenv("APP_TOKEN_SIGN_KEY", "secret")
	cfg, err := GetServerConfig(serverFlags(t, "-a", "127.0.0.1:9000", "--request-timeout", "5s"))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "secret", cfg.TokenSignKey)
	assert.Equal(t, "goal-keeper", cfg.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.TokenDuration)
}
