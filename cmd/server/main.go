package main

import (
	"fmt"

	"github.com/MKhiriev/go-maintenance-search/internal/adapter"
	"github.com/MKhiriev/go-maintenance-search/internal/config"
	"github.com/MKhiriev/go-maintenance-search/internal/handler"
	"github.com/MKhiriev/go-maintenance-search/internal/handler/http"
	"github.com/MKhiriev/go-maintenance-search/internal/logger"
	"github.com/MKhiriev/go-maintenance-search/internal/metrics"
	"github.com/MKhiriev/go-maintenance-search/internal/server"
	"github.com/MKhiriev/go-maintenance-search/internal/session"
	"github.com/MKhiriev/go-maintenance-search/internal/validators"
	"github.com/MKhiriev/go-maintenance-search/internal/view"
	"github.com/MKhiriev/go-maintenance-search/internal/workers"
	"github.com/MKhiriev/go-maintenance-search/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("maintenance-search-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("adapter", cfg.Adapter.HTTPAddress).
		Str("locale", cfg.App.Locale).
		Msg("received configs")

	recordsAPI, err := adapter.NewHTTPRecordsAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating records adapter")
	}

	recorder, err := metrics.NewPrometheus()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating metrics")
	}

	validator := validators.NewModelValidator()

	sessions := session.NewStore(func() *view.RecordSearchView {
		return view.NewRecordSearchView(recordsAPI, view.Options{
			Locale:     cfg.App.Locale,
			Navigation: cfg.Navigation,
			Validator:  validator,
			Metrics:    recorder,
			Logger:     log,
		})
	}, cfg.App.SessionIdleTimeout, log, session.WithMaxSessions(cfg.App.MaxSessions))

	// linker-provided version wins over the configured one
	version := buildVersion
	if version == "N/A" && cfg.App.Version != "" {
		version = cfg.App.Version
	}

	handlers, err := handler.NewHandlers(http.Dependencies{
		Sessions:  sessions,
		Signer:    session.NewSigner(cfg.App),
		Validator: validator,
		Metrics:   recorder.Handler(),
		BuildInfo: models.NewAppBuildInfo(version, buildDate, buildCommit),
		Locale:    cfg.App.Locale,
	}, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	backgroundWorkers := workers.NewWorkers(
		workers.NewSessionSweeper(sessions, cfg.Workers.SessionSweepInterval, log),
	)

	srv, err := server.NewServer(handlers, backgroundWorkers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
