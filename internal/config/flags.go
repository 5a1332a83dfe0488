package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses the client command line.
//
// Flags:
//
//	-a backend address, e.g. http://localhost:8000
//	-api-base API path prefix, e.g. /api
//	-request-timeout outbound request timeout (e.g. "10s")
//	-d sqlite DSN for the durable token store
//	-log-file client log file path
//	-profile-refresh profile refresh interval (e.g. "5m")
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("tieba-client", flag.ContinueOnError)

	var (
		address        string
		apiBasePath    string
		requestTimeout time.Duration
		dsn            string
		logFile        string
		refresh        time.Duration
		jsonConfigPath string
	)

	fs.StringVar(&address, "a", "", "Backend address")
	fs.StringVar(&apiBasePath, "api-base", "", "API base path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&dsn, "d", "", "Durable store DSN")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.DurationVar(&refresh, "profile-refresh", 0, "Profile refresh interval (e.g., 5m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Storage: Storage{
			DB: DB{DSN: dsn},
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			APIBasePath:    apiBasePath,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			ProfileRefreshInterval: refresh,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
