package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airport/api"
	"github.com/Domenick1991/airport/config"
	"github.com/Domenick1991/airport/internal/bootstrap"
	"github.com/Domenick1991/airport/internal/seed"
	"github.com/Domenick1991/airport/internal/service/airport"
	"github.com/gin-gonic/gin"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := bootstrap.NewLogger(cfg.Log, os.Stderr)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	producer, closer, err := bootstrap.NewPublisher(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("connect events: %v", err)
	}
	defer closer.Close()

	manager := airport.NewManager(
		airport.WithLogger(logger),
		airport.WithProducer(producer, cfg.Events.Topic),
	)
	if cfg.Console.SeedSampleData {
		if err := seed.Load(ctx, manager, time.Now()); err != nil {
			log.Fatalf("load sample data: %v", err)
		}
	}

	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(manager, logger, cfg.HTTP.CORSOrigins)

	if err := bootstrap.Run(ctx, cfg, router, logger); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
