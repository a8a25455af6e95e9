package main

import (
	"fmt"

	"github.com/MKhiriev/go-maintenance-search/internal/adapter"
	"github.com/MKhiriev/go-maintenance-search/internal/client"
	"github.com/MKhiriev/go-maintenance-search/internal/config"
	"github.com/MKhiriev/go-maintenance-search/internal/logger"
	"github.com/MKhiriev/go-maintenance-search/internal/tui"
	"github.com/MKhiriev/go-maintenance-search/internal/view"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("maintenance-search-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	recordsAPI, err := adapter.NewHTTPRecordsAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create records adapter")
	}

	searchView := view.NewRecordSearchView(recordsAPI, view.Options{
		Locale:     cfg.App.Locale,
		Navigation: cfg.Navigation,
		Logger:     log,
	})

	ui, err := tui.New(searchView, cfg.App.Locale, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
