package main

import (
	"context"
	"fmt"

	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/config"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/handler"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/logger"
	"github.com/MaftunbekOff/Ulta-Secure-Messenger-sub000/internal/server"
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

	log := logger.NewLogger("key-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, *cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
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
