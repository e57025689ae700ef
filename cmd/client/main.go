package main

import (
	"context"
	"fmt"

	"github.com/dkrylov/animereview/internal/adapter"
	"github.com/dkrylov/animereview/internal/client"
	"github.com/dkrylov/animereview/internal/config"
	"github.com/dkrylov/animereview/internal/logger"
	"github.com/dkrylov/animereview/internal/service"
	"github.com/dkrylov/animereview/internal/store"
	"github.com/dkrylov/animereview/internal/tui"
	"github.com/dkrylov/animereview/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("animereview-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	catalog, err := adapter.NewJikanCatalog(cfg.Catalog, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create catalog adapter")
	}

	services, err := service.NewServices(context.Background(), storages, service.NewStubGoogleIdentity(), cfg.Session, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create services")
	}

	ui, err := tui.New(services, catalog, storages.KV, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	janitor := workers.NewCacheJanitor(catalog, log)

	app, err := client.NewApp(services, ui, janitor, cfg.Workers, log)
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
