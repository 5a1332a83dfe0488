// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",
		"DOTENV": "/path/to/.env",

		"APP_SITE_NAME":            "tieba",
		"APP_VERSION":              "2.1.0",
		"APP_LOG_FILE":             "/tmp/client.log",
		"APP_UPLOAD_MAX_SIZE":      "2048",
		"APP_UPLOAD_ALLOWED_TYPES": "image/png,image/gif",

		"ADAPTER_ADDRESS":         "http://localhost:9000",
		"ADAPTER_API_BASE_PATH":   "/v2",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DSN": "client.db",

		"WORKERS_PROFILE_REFRESH_INTERVAL": "5m",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "/path/to/.env", cfg.DotEnvPath)

	assert.Equal(t, "tieba", cfg.App.SiteName)
	assert.Equal(t, "2.1.0", cfg.App.Version)
	assert.Equal(t, "/tmp/client.log", cfg.App.LogFile)
	assert.Equal(t, int64(2048), cfg.App.UploadMaxSize)
	assert.Equal(t, []string{"image/png", "image/gif"}, cfg.App.UploadAllowedTypes)

	assert.Equal(t, "http://localhost:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "/v2", cfg.Adapter.APIBasePath)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "client.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 5*time.Minute, cfg.Workers.ProfileRefreshInterval)
}

func TestParseEnv_NoVars(t *testing.T) {
	// Arrange
	clearEnvVars(t, "CONFIG", "DOTENV", "APP_SITE_NAME", "ADAPTER_ADDRESS", "STORAGE_DB_DSN")

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, cfg.JSONFilePath)
	assert.Empty(t, cfg.App.SiteName)
	assert.Empty(t, cfg.Adapter.HTTPAddress)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{"ADAPTER_REQUEST_TIMEOUT": "soon"})

	// Act
	err := parseEnv(&StructuredConfig{})

	// Assert
	assert.Error(t, err)
}

func TestLoadDotEnv_MissingDefaultIsIgnored(t *testing.T) {
	// Arrange
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// Act / Assert
	assert.NoError(t, loadDotEnv(""))
}

func TestLoadDotEnv_MissingExplicitFails(t *testing.T) {
	assert.Error(t, loadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}

func TestLoadDotEnv_DoesNotOverrideEnv(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_VERSION=from-file\n"), 0o600))
	setEnvVars(t, map[string]string{"APP_VERSION": "from-env"})

	// Act
	require.NoError(t, loadDotEnv(path))

	// Assert
	assert.Equal(t, "from-env", os.Getenv("APP_VERSION"))
}
