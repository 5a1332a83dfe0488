// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-tieba client. It is populated by merging values from a .env file,
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds client-wide settings shown to the user and applied to
	// uploads.
	App App `envPrefix:"APP_"`

	// Storage holds the durable storage settings for the bearer token.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the backend address and outbound request settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the optional path to a .env file loaded before the
	// environment is parsed.
	// Env: DOTENV
	DotEnvPath string `env:"DOTENV"`
}

// App holds client-wide settings.
type App struct {
	// SiteName is the product name rendered in the UI header.
	// Env: APP_SITE_NAME
	SiteName string `env:"SITE_NAME"`

	// Version is the semantic version shown in the UI.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogFile is the path of the client log file. The terminal belongs to
	// the UI, so logs never go to stdout while it runs.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// UploadMaxSize is the largest file, in bytes, the client accepts for
	// upload.
	// Env: APP_UPLOAD_MAX_SIZE
	UploadMaxSize int64 `env:"UPLOAD_MAX_SIZE"`

	// UploadAllowedTypes lists the MIME types accepted for upload.
	// Env: APP_UPLOAD_ALLOWED_TYPES (comma separated)
	UploadAllowedTypes []string `env:"UPLOAD_ALLOWED_TYPES" envSeparator:","`
}

// Storage groups the configuration for durable client storage.
type Storage struct {
	// DB holds the sqlite settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the sqlite database that persists the
// bearer token between runs.
type DB struct {
	// DSN is the sqlite file path (e.g. "tieba-client.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds settings of the outbound HTTP client.
type Adapter struct {
	// HTTPAddress is the backend origin, with or without scheme
	// (e.g. "http://localhost:8000" or "localhost:8000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// APIBasePath is the path prefix of every API endpoint (e.g. "/api").
	// Env: ADAPTER_API_BASE_PATH
	APIBasePath string `env:"API_BASE_PATH"`

	// RequestTimeout bounds every outbound call (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// ProfileRefreshInterval is how often the signed-in user's profile is
	// re-fetched. Zero disables the job.
	// Env: WORKERS_PROFILE_REFRESH_INTERVAL
	ProfileRefreshInterval time.Duration `env:"PROFILE_REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. .env file
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
