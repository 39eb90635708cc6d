package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr   string `env:"HTTP_ADDR" envDefault:":8080"`
	Instrument string `env:"INSTRUMENT" envDefault:"BTC-USD"`

	EnableJournaling  bool `env:"ENABLE_JOURNALING" envDefault:"true"`
	ConditionalOrders bool `env:"CONDITIONAL_ORDERS" envDefault:"true"`

	// Empty PostgresDSN runs the engine with the in-memory journal store.
	PostgresDSN string `env:"POSTGRES_DSN"`

	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	DepthCacheTTL time.Duration `env:"DEPTH_CACHE_TTL" envDefault:"5m"`

	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"trades"`

	// Zero disables periodic snapshots.
	SnapshotInterval time.Duration `env:"SNAPSHOT_INTERVAL" envDefault:"0"`
}

// Load reads .env when present, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
