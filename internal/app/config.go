package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	apigrpc "phiCalc/internal/api/grpc"
	"phiCalc/internal/api/http"
	"phiCalc/internal/infrastructure/click"
	"phiCalc/internal/infrastructure/kafka"
	"phiCalc/internal/infrastructure/mongo"
	"phiCalc/internal/infrastructure/pg"
	"phiCalc/internal/infrastructure/redis"
	"phiCalc/internal/pkg/logger"
	"phiCalc/internal/usecase/stats"
)

const AppName = "PHICALC"

// EnvFileVar — переменная с путём к .env; по умолчанию ./.env.
const EnvFileVar = AppName + "_ENV_FILE"

// Драйверы хранилища истории.
const (
	StoragePG    = "pg"
	StorageMongo = "mongo"
)

// StorageConfig — выбор хранилища истории. Переменная: PHICALC_STORAGE_DRIVER.
type StorageConfig struct {
	Driver string `envconfig:"DRIVER" default:"pg"`
}

// Config — конфиг приложения. Заполняется через envconfig с префиксом PHICALC.
type Config struct {
	Server     http.ServerConfig  `envconfig:"SERVER"`
	Grpc       apigrpc.GrpcConfig `envconfig:"GRPC"`
	Storage    StorageConfig      `envconfig:"STORAGE"`
	DB         pg.Config          `envconfig:"DB"`
	Mongo      mongo.Config       `envconfig:"MONGO"`
	Redis      redis.Config       `envconfig:"REDIS"`
	Kafka      kafka.Config       `envconfig:"KAFKA"`
	ClickHouse click.Config       `envconfig:"CLICKHOUSE"`
	Log        logger.Config      `envconfig:"LOG"`
	Stats      stats.Config       `envconfig:"STATS"`
}

// Validate проверяет значения, которые envconfig не проверяет сам.
func (c Config) Validate() error {
	switch c.Storage.Driver {
	case StoragePG, StorageMongo:
	default:
		return fmt.Errorf("storage driver %q: want %s or %s", c.Storage.Driver, StoragePG, StorageMongo)
	}
	if c.Redis.TTL < 0 {
		return fmt.Errorf("redis ttl %s: must not be negative", c.Redis.TTL)
	}
	return c.Stats.Validate()
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
func LoadCfg() (Config, error) {
	envFile := os.Getenv(EnvFileVar)
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		slog.Info("config: .env not loaded, using environment", "file", envFile, "error", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
