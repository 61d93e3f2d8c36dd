package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`
	GRPCAddr string `env:"GRPC_ADDR" envDefault:":50051"`

	MySQLDSN  string `env:"MYSQL_DSN" envDefault:"root:root@tcp(localhost:3306)/roomledger?parseTime=true"`
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	WorkerCount    int           `env:"WORKER_COUNT" envDefault:"4"`
	EventQueueSize int           `env:"EVENT_QUEUE_SIZE" envDefault:"1024"`
	LockTTL        time.Duration `env:"LOCK_TTL" envDefault:"5s"`

	// SettlementAssetID is the asset bookings are paid in. Created at startup
	// when empty.
	SettlementAssetID string `env:"SETTLEMENT_ASSET_ID"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
