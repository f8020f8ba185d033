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

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempConfig(t, `{
		"auth": {
			"token_sign_key": "secret",
			"token_issuer": "contact-keeper",
			"token_duration": "1h"
		},
		"storage": {"db": {"dsn": "postgres://localhost/contacts"}},
		"server": {"http_address": "localhost:8080", "request_timeout": "30s"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "contact-keeper", cfg.Auth.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "postgres://localhost/contacts", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON("definitely/not/here.json")
	assert.Error(t, err)
}

func TestParseJSON_BadJSON(t *testing.T) {
	path := writeTempConfig(t, `{not json`)
	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestParseClientJSON_FullConfig(t *testing.T) {
	path := writeTempConfig(t, `{
		"adapter": {"base_url": "http://localhost:8080", "request_timeout": "10s"},
		"storage": {"db": {"dsn": "book.db"}},
		"auth": {"login": "john", "password": "swordfish"},
		"workers": {"sync_interval": "2m"}
	}`)

	cfg, err := parseClientJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Adapter.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "book.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "john", cfg.Auth.Login)
	assert.Equal(t, 2*time.Minute, cfg.Workers.SyncInterval)
}

func TestMergeClientConfig_EnvWins(t *testing.T) {
	dst := &ClientConfig{
		Adapter: ClientAdapter{BaseURL: "http://from-env:8080"},
	}
	src := &ClientConfig{
		Adapter: ClientAdapter{BaseURL: "http://from-json:8080", RequestTimeout: 10 * time.Second},
		Auth:    ClientAuth{Login: "json-login", Password: "json-pass"},
	}

	mergeClientConfig(dst, src)

	assert.Equal(t, "http://from-env:8080", dst.Adapter.BaseURL)
	assert.Equal(t, 10*time.Second, dst.Adapter.RequestTimeout)
	assert.Equal(t, "json-login", dst.Auth.Login)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Duration
	}{
		{name: "string form", in: `"1h30m"`, want: 90 * time.Minute},
		{name: "numeric nanoseconds", in: `1000000000`, want: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, json.Unmarshal([]byte(tt.in), &d))
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_UnmarshalJSON_BadString(t *testing.T) {
	var d Duration
	assert.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, `"1m0s"`, string(b))
}
