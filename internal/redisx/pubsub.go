package redisx

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Domenick1991/airport/config"
	"github.com/Domenick1991/airport/internal/domain"
	"github.com/redis/go-redis/v9"
)

const ns = "airport:v1"

func Channel(topic string) string {
	return fmt.Sprintf("%s:events:%s", ns, topic)
}

// NewClient connects and pings so a bad address is reported at startup.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	const op = "redisx.NewClient"

	client := redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})

	ctxPing, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := client.Ping(ctxPing).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return client, nil
}

// EventsPubSub carries airport events over redis pub/sub.
type EventsPubSub struct {
	rdb    *redis.Client
	logger *slog.Logger
}

func NewEventsPubSub(rdb *redis.Client, logger *slog.Logger) *EventsPubSub {
	return &EventsPubSub{rdb: rdb, logger: logger}
}

// Publish sends value to the channel derived from topic. Redis pub/sub has no
// keys, so key is only logged.
func (p *EventsPubSub) Publish(ctx context.Context, topic, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	if err := p.rdb.Publish(ctx, Channel(topic), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish to redis: %w", err)
	}
	p.logger.Debug("published to redis", "channel", Channel(topic), "key", key)
	return nil
}

func (p *EventsPubSub) Subscribe(ctx context.Context, topic string, handler func(context.Context, domain.Event) error) error {
	sub := p.rdb.Subscribe(ctx, Channel(topic))
	defer sub.Close()

	ch := sub.Channel(redis.WithChannelSize(256))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			var event domain.Event
			if err := json.Unmarshal([]byte(m.Payload), &event); err != nil {
				p.logger.Warn("decode event", "channel", m.Channel, "error", err)
				continue
			}
			if err := handler(ctx, event); err != nil {
				return err
			}
		}
	}
}

func (p *EventsPubSub) Close() error {
	return p.rdb.Close()
}
