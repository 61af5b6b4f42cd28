package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://localhost/panel"}},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── merge / build ─────────────────────────────────────────────────────────────

// TestMerge_EmptyBuilderYieldsDefaults verifies that a builder with no
// sources produces exactly the defaults.
func TestMerge_EmptyBuilderYieldsDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().merge()
	require.NoError(t, err)
	assert.Equal(t, defaults(), cfg)
}

func TestMerge_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.merge()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestMerge_LaterSourceWins verifies that non-zero fields of later sources
// override earlier ones while zero fields leave them intact.
func TestMerge_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0", BootstrapLogin: "root"}},
		&StructuredConfig{App: App{Version: "2.0.0"}},
	)

	cfg, err := b.merge()
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "root", cfg.App.BootstrapLogin)
	assert.Equal(t, "admin", cfg.App.BootstrapPassword)
}

func TestMerge_DefaultsDoNotOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App:     App{PasswordScheme: "legacy"},
		Storage: Storage{Session: Session{Path: "/tmp/s.db"}},
		Adapter: Adapter{RequestTimeout: 3 * time.Second},
	})

	cfg, err := b.merge()
	require.NoError(t, err)
	assert.Equal(t, "legacy", cfg.App.PasswordScheme)
	assert.Equal(t, "/tmp/s.db", cfg.Storage.Session.Path)
	assert.Equal(t, DefaultSessionKey, cfg.Storage.Session.Key)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
}

func TestBuild_ValidatesResult(t *testing.T) {
	_, err := newConfigBuilder().build()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)

	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig())
	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/panel", cfg.Storage.DB.DSN)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("APP_BCRYPT_COST", "12")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env")
	t.Setenv("STORAGE_SESSION_PATH", "/var/lib/panel/session.db")
	t.Setenv("ADAPTER_ADDRESS", "https://rest.example.co")
	t.Setenv("ADAPTER_API_KEY", "anon")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "5s")

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	got := b.configs[0]
	assert.Equal(t, "env-version", got.App.Version)
	assert.Equal(t, 12, got.App.BcryptCost)
	assert.Equal(t, "postgres://env", got.Storage.DB.DSN)
	assert.Equal(t, "/var/lib/panel/session.db", got.Storage.Session.Path)
	assert.Equal(t, "https://rest.example.co", got.Adapter.HTTPAddress)
	assert.Equal(t, "anon", got.Adapter.APIKey)
	assert.Equal(t, 5*time.Second, got.Adapter.RequestTimeout)
}

func TestWithEnv_BadValueSetsError(t *testing.T) {
	t.Setenv("APP_BCRYPT_COST", "not-a-number")

	b := newConfigBuilder()
	b.withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_MissingFileIgnored(t *testing.T) {
	b := newConfigBuilder()
	b.withDotEnv(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, b.err)
}

// TestWithDotEnv_ExportsValues verifies that values from the file become
// visible to withEnv and never override an already set variable.
func TestWithDotEnv_ExportsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"APP_BOOTSTRAP_LOGIN=root\nAPP_VERSION=from-file\n"), 0o600))

	t.Setenv("APP_VERSION", "from-env")
	// t.Setenv restores the original value; register the one godotenv sets.
	t.Setenv("APP_BOOTSTRAP_LOGIN", "")
	require.NoError(t, os.Unsetenv("APP_BOOTSTRAP_LOGIN"))

	b := newConfigBuilder().withDotEnv(path).withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "root", b.configs[0].App.BootstrapLogin)
	assert.Equal(t, "from-env", b.configs[0].App.Version)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-d", "postgres://flag", "-password-scheme", "legacy"})
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "postgres://flag", b.configs[0].Storage.DB.DSN)
	assert.Equal(t, "legacy", b.configs[0].App.PasswordScheme)
}

func TestWithFlags_UnknownFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_LastSourcePathWins verifies that the JSON file path set by a
// later source is the one that gets loaded, and that the file overrides
// earlier sources.
func TestWithJSON_LastSourcePathWins(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "first"}})
	second := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"version": "second"},
		"storage": map[string]any{"db": map[string]any{"dsn": "postgres://json"}},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first, App: App{Version: "env"}},
		&StructuredConfig{JSONFilePath: second},
	)

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "second", cfg.App.Version)
	assert.Equal(t, "postgres://json", cfg.Storage.DB.DSN)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()
	assert.Error(t, b.err)
}

// ── validation ────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	base := func() *StructuredConfig {
		cfg := validConfig()
		cfg, _ = mergeWithDefaults(cfg)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr error
	}{
		{name: "valid postgres", mutate: func(c *StructuredConfig) {}},
		{
			name: "valid rest gateway",
			mutate: func(c *StructuredConfig) {
				c.Storage.DB.DSN = ""
				c.Adapter.HTTPAddress = "https://rest.example.co"
				c.Adapter.APIKey = "anon"
			},
		},
		{
			name:    "no user store",
			mutate:  func(c *StructuredConfig) { c.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "no session path",
			mutate:  func(c *StructuredConfig) { c.Storage.Session.Path = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "gateway without api key",
			mutate:  func(c *StructuredConfig) { c.Adapter.HTTPAddress = "https://rest.example.co" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "unknown scheme",
			mutate:  func(c *StructuredConfig) { c.App.PasswordScheme = "md5" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "empty bootstrap password",
			mutate:  func(c *StructuredConfig) { c.App.BootstrapPassword = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "no listen address",
			mutate:  func(c *StructuredConfig) { c.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestPanelConfigValidate_IgnoresServer verifies that the panel view does not
// require a listen address.
func TestPanelConfigValidate_IgnoresServer(t *testing.T) {
	cfg, err := mergeWithDefaults(validConfig())
	require.NoError(t, err)

	panelCfg := &PanelConfig{App: cfg.App, Storage: cfg.Storage, Adapter: cfg.Adapter}
	assert.NoError(t, panelCfg.validate())
	assert.False(t, panelCfg.UsesRESTStore())
}

func mergeWithDefaults(cfg *StructuredConfig) (*StructuredConfig, error) {
	b := newConfigBuilder()
	b.configs = append(b.configs, cfg)
	return b.merge()
}
