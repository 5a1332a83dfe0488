package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-tieba/internal/client"
	"github.com/MKhiriev/go-tieba/internal/config"
	"github.com/MKhiriev/go-tieba/internal/logger"
	"github.com/MKhiriev/go-tieba/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so that deferred cleanup, including the
// log file, happens before the process exits.
func run() int {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("go-tieba-client", os.Stderr).Error().Err(err).Msg("error getting configs")
		return 1
	}

	log, logFile := logger.NewClientLogger("go-tieba-client", cfg.App.LogFile)
	defer logFile.Close()

	app, err := client.NewApp(context.Background(), cfg, buildInfo, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		return 1
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
		return 1
	}
	return 0
}
