package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EventsDriverNone  = ""
	EventsDriverKafka = "kafka"
	EventsDriverRedis = "redis"
)

type Config struct {
	Log     LogConfig     `yaml:"log"`
	Console ConsoleConfig `yaml:"console"`
	HTTP    HTTPConfig    `yaml:"http"`
	Events  EventsConfig  `yaml:"events"`
	Kafka   KafkaConfig   `yaml:"kafka"`
	Redis   RedisConfig   `yaml:"redis"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type ConsoleConfig struct {
	SeedSampleData bool `yaml:"seed_sample_data"`
}

type HTTPConfig struct {
	Address     string   `yaml:"address"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type EventsConfig struct {
	Driver string `yaml:"driver"`
	Topic  string `yaml:"topic"`
}

type KafkaConfig struct {
	Brokers []string `yaml:"brokers"`
	GroupID string   `yaml:"group_id"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

func Default() *Config {
	return &Config{
		Log:     LogConfig{Level: "info"},
		Console: ConsoleConfig{SeedSampleData: true},
		HTTP:    HTTPConfig{Address: ":8080"},
		Events:  EventsConfig{Topic: "airport-events"},
		Kafka:   KafkaConfig{GroupID: "airport-notifier"},
		Redis:   RedisConfig{Addr: "localhost:6379"},
	}
}

// LoadConfig reads the YAML file at path on top of Default, then applies
// AIRPORT_* environment overrides (a .env file in the working directory is loaded first).
// A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	_ = godotenv.Load()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("AIRPORT_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("AIRPORT_SEED_SAMPLE_DATA"); v != "" {
		seed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid AIRPORT_SEED_SAMPLE_DATA: %w", err)
		}
		c.Console.SeedSampleData = seed
	}
	if v := os.Getenv("AIRPORT_HTTP_ADDRESS"); v != "" {
		c.HTTP.Address = v
	}
	if v := os.Getenv("AIRPORT_CORS_ORIGINS"); v != "" {
		c.HTTP.CORSOrigins = splitList(v)
	}
	if v, ok := os.LookupEnv("AIRPORT_EVENTS_DRIVER"); ok {
		c.Events.Driver = v
	}
	if v := os.Getenv("AIRPORT_EVENTS_TOPIC"); v != "" {
		c.Events.Topic = v
	}
	if v := os.Getenv("AIRPORT_KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = splitList(v)
	}
	if v := os.Getenv("AIRPORT_KAFKA_GROUP_ID"); v != "" {
		c.Kafka.GroupID = v
	}
	if v := os.Getenv("AIRPORT_REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("AIRPORT_REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("AIRPORT_REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid AIRPORT_REDIS_DB: %w", err)
		}
		c.Redis.DB = db
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Events.Driver {
	case EventsDriverNone, EventsDriverRedis:
	case EventsDriverKafka:
		if len(c.Kafka.Brokers) == 0 {
			return errors.New("events driver kafka requires kafka.brokers")
		}
	default:
		return fmt.Errorf("unknown events driver %q", c.Events.Driver)
	}
	if c.Events.Driver != EventsDriverNone && c.Events.Topic == "" {
		return errors.New("events.topic is required when events are enabled")
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", l.Level, err)
	}
	return level, nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
