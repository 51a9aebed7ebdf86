package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/hello-backend/internal/config"
	myHTTP "github.com/MKhiriev/hello-backend/internal/handler/http"
	"github.com/MKhiriev/hello-backend/internal/logger"
	"github.com/MKhiriev/hello-backend/internal/server"
	"github.com/MKhiriev/hello-backend/models"
)

const appName = "hello-backend"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	log, err := logger.Init(appName)
	if err != nil {
		log.Warn().Err(err).Msg("logger was configured earlier")
	}

	buildInfo := models.NewAppBuildInfo(appName, buildVersion, buildDate, buildCommit)
	log.Info().
		Str("build_date", buildInfo.BuildDate()).
		Str("build_commit", buildInfo.BuildCommit()).
		Msg(buildInfo.String())

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return server.ExitFailure
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	srv := server.NewServer(myHTTP.NewHandler(log), cfg.Server, log)
	outcome, err := srv.Run(ctx)

	return server.LogOutcome(log, outcome, err)
}
