package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Domenick1991/airport/config"
	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/kafka"
	"github.com/Domenick1991/airport/internal/redisx"
	"github.com/Domenick1991/airport/internal/service/airport"
)

// NewLogger builds the process logger at the configured level, writing text to w.
func NewLogger(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewPublisher returns the producer for the configured events driver, or nil
// when events are disabled. The closer is always safe to call.
func NewPublisher(ctx context.Context, cfg *config.Config, logger *slog.Logger) (airport.Producer, io.Closer, error) {
	switch cfg.Events.Driver {
	case config.EventsDriverKafka:
		producer := kafka.NewProducer(cfg.Kafka.Brokers, logger)
		if err := producer.CheckConnection(ctx); err != nil {
			_ = producer.Close()
			return nil, nil, err
		}
		return producer, producer, nil
	case config.EventsDriverRedis:
		rdb, err := redisx.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		pubsub := redisx.NewEventsPubSub(rdb, logger)
		return pubsub, pubsub, nil
	case config.EventsDriverNone:
		return nil, nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown events driver %q", cfg.Events.Driver)
	}
}

// Subscribe delivers events from the configured driver to handler until ctx
// ends or the handler fails.
func Subscribe(ctx context.Context, cfg *config.Config, logger *slog.Logger, handler func(context.Context, domain.Event) error) error {
	switch cfg.Events.Driver {
	case config.EventsDriverKafka:
		consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Events.Topic, logger)
		defer consumer.Close()
		return consumer.Consume(ctx, handler)
	case config.EventsDriverRedis:
		rdb, err := redisx.NewClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		pubsub := redisx.NewEventsPubSub(rdb, logger)
		defer pubsub.Close()
		return pubsub.Subscribe(ctx, cfg.Events.Topic, handler)
	default:
		return fmt.Errorf("events driver %q cannot be consumed", cfg.Events.Driver)
	}
}
