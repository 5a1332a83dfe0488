package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"app": {
			"site_name": "json-site",
			"version": "3.0.0",
			"log_file": "c.log",
			"upload_max_size": 1024,
			"upload_allowed_types": ["image/png"]
		},
		"storage": {"db": {"dsn": "json.db"}},
		"adapter": {
			"http_address": "http://json:8000",
			"api_base_path": "/api",
			"request_timeout": "15s"
		},
		"workers": {"profile_refresh_interval": 60000000000}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-site", cfg.App.SiteName)
	assert.Equal(t, "3.0.0", cfg.App.Version)
	assert.Equal(t, "c.log", cfg.App.LogFile)
	assert.Equal(t, int64(1024), cfg.App.UploadMaxSize)
	assert.Equal(t, []string{"image/png"}, cfg.App.UploadAllowedTypes)
	assert.Equal(t, "json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "http://json:8000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "/api", cfg.Adapter.APIBasePath)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Workers.ProfileRefreshInterval)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"adapter":{"request_timeout":true}}`), 0o600))

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
