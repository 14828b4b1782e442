package main

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-secret-selfie/internal/config"
	"github.com/MKhiriev/go-secret-selfie/internal/handler"
	"github.com/MKhiriev/go-secret-selfie/internal/logger"
	"github.com/MKhiriev/go-secret-selfie/internal/server"
	"github.com/MKhiriev/go-secret-selfie/internal/service"
	"github.com/MKhiriev/go-secret-selfie/internal/store"
	"github.com/MKhiriev/go-secret-selfie/internal/workers"
	"github.com/MKhiriev/go-secret-selfie/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("secret-selfie-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Bool("gallery", cfg.GalleryEnabled()).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	var storages *store.Storages
	if cfg.GalleryEnabled() {
		storages, err = store.NewStorages(ctx, cfg.Storage.DB, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating storages")
		}
		defer storages.Close()
	}

	services, err := service.NewServices(storages, cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	var jobs []workers.Worker
	if services.GalleryEnabled {
		jobs = append(jobs, workers.NewGalleryCleanupWorker(services.GalleryService, cfg.Workers.CleanupInterval, log))
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		workers.NewWorkers(jobs...).Run(ctx)
	}()

	if err = srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}

	stop()
	wg.Wait()
	log.Info().Msg("bye")
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
