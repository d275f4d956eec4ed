package main

import (
	"context"
	"fmt"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/adapter"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/client"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/config"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/logger"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/service"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("messenger-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	keyService, err := adapter.NewHTTPKeyServiceAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create key service adapter")
	}

	ctx := context.Background()

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer func() {
		if err = localStorage.Close(); err != nil {
			log.Err(err).Msg("close local storage")
		}
	}()

	services, err := service.NewClientServices(localStorage, keyService, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	app := client.NewApp(services, *cfg, log)

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
