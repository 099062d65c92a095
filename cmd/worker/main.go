package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airport/config"
	"github.com/Domenick1991/airport/internal/bootstrap"
	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/notify"
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
	if cfg.Events.Driver == config.EventsDriverNone {
		log.Fatalf("worker needs events.driver set to %q or %q", config.EventsDriverKafka, config.EventsDriverRedis)
	}

	logger, err := bootstrap.NewLogger(cfg.Log, os.Stderr)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	notifier := notify.NewNotifier(os.Stdout)
	logger.Info("worker started", "driver", cfg.Events.Driver, "topic", cfg.Events.Topic)

	err = bootstrap.Subscribe(ctx, cfg, logger, func(ctx context.Context, event domain.Event) error {
		if err := notifier.Send(ctx, event); err != nil {
			logger.Warn("send notice", "type", event.Type, "error", err)
		}
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("consumer stopped: %v", err)
	}
	logger.Info("worker stopped")
}
