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

func TestParseJSON_FullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"app": {
			"password_scheme": "bcrypt",
			"bcrypt_cost": 11,
			"bootstrap_login": "root",
			"bootstrap_password": "toor",
			"version": "1.2.3"
		},
		"storage": {
			"db": {"dsn": "postgres://json"},
			"session": {"path": "/tmp/s.db", "key": "slot"}
		},
		"server": {"http_address": "localhost:9999", "request_timeout": "15s"},
		"adapter": {"http_address": "https://rest.example.co", "api_key": "anon", "request_timeout": 2000000000}
	}`), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, App{
		PasswordScheme:    "bcrypt",
		BcryptCost:        11,
		BootstrapLogin:    "root",
		BootstrapPassword: "toor",
		Version:           "1.2.3",
	}, cfg.App)
	assert.Equal(t, "postgres://json", cfg.Storage.DB.DSN)
	assert.Equal(t, Session{Path: "/tmp/s.db", Key: "slot"}, cfg.Storage.Session)
	assert.Equal(t, Server{HTTPAddress: "localhost:9999", RequestTimeout: 15 * time.Second}, cfg.Server)
	assert.Equal(t, Adapter{HTTPAddress: "https://rest.example.co", APIKey: "anon", RequestTimeout: 2 * time.Second}, cfg.Adapter)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorContains(t, err, "error reading a json file")
}

func TestParseJSON_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"app":`), 0o600))

	_, err := parseJSON(path)
	assert.ErrorContains(t, err, "error decoding json configs")
}

func TestDuration_JSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1m30s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000`), &d))
	assert.Equal(t, time.Microsecond, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`"forever"`), &d))

	out, err := json.Marshal(Duration(5 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"5s"`, string(out))
}
