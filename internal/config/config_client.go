package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetClientConfig] to fields left empty by every source.
const (
	DefaultHTTPAddress    = "http://localhost:8000"
	DefaultAPIBasePath    = "/api"
	DefaultRequestTimeout = 10 * time.Second
	DefaultDSN            = "tieba-client.db"
	DefaultSiteName       = "贴吧百科"
	DefaultVersion        = "1.0.0"
	DefaultUploadMaxSize  = 10 << 20
)

// DefaultUploadAllowedTypes is the upload MIME allow-list used when none is
// configured.
var DefaultUploadAllowedTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"application/pdf",
}

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// SiteName is the product name shown in the UI header.
	SiteName string
	// Version is the client version shown in the UI.
	Version string
	// LogFile is the log file path; empty means next to the executable.
	LogFile string
	// UploadMaxSize is the upload size limit in bytes.
	UploadMaxSize int64
	// UploadAllowedTypes is the upload MIME allow-list.
	UploadAllowedTypes []string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend origin used by the client.
	HTTPAddress string
	// APIBasePath is prefixed to every endpoint path.
	APIBasePath string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used by the durable token store.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// ProfileRefreshInterval defines how often the profile refresh job runs.
	// Zero disables it.
	ProfileRefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the backend address and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], fills defaults for
// anything no source set, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps cfg onto a [ClientConfig] and applies defaults.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			SiteName:           cfg.App.SiteName,
			Version:            cfg.App.Version,
			LogFile:            cfg.App.LogFile,
			UploadMaxSize:      cfg.App.UploadMaxSize,
			UploadAllowedTypes: cfg.App.UploadAllowedTypes,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			APIBasePath:    cfg.Adapter.APIBasePath,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{ProfileRefreshInterval: cfg.Workers.ProfileRefreshInterval},
	}
	clientCfg.applyDefaults()

	return clientCfg
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.App.SiteName == "" {
		cfg.App.SiteName = DefaultSiteName
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
	if cfg.App.UploadMaxSize == 0 {
		cfg.App.UploadMaxSize = DefaultUploadMaxSize
	}
	if len(cfg.App.UploadAllowedTypes) == 0 {
		cfg.App.UploadAllowedTypes = append([]string(nil), DefaultUploadAllowedTypes...)
	}
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Adapter.APIBasePath == "" {
		cfg.Adapter.APIBasePath = DefaultAPIBasePath
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
}
