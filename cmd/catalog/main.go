package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/narwhalmedia/catalog/internal/container"
	"github.com/narwhalmedia/catalog/pkg/config"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

func main() {
	// Load configuration
	cfg := config.MustLoadServiceConfig("catalog", config.GetDefaults())

	// Initialize logger
	log, err := cfg.Logger.ToLoggerConfig().Build()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()
	log = log.Named(cfg.Service.Name)

	log.Info("Catalog service starting",
		interfaces.String("version", config.GetServiceVersion(&cfg.Service)),
		interfaces.String("environment", cfg.Service.Environment),
		interfaces.String("database", cfg.Database.Driver),
		interfaces.String("storage", cfg.Storage.Type),
		interfaces.Bool("nats", cfg.NATS.Enabled()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	catalog, cleanup, err := container.InitializeCatalog(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize catalog", interfaces.Error(err))
	}
	defer cleanup()

	catalog.StartEncoderConsumer(ctx)

	log.Info("Catalog service started")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down catalog service...")
	cancel()
}
