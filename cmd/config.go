package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"shop/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	envPrefix = "SHOP_"
)

type Config struct {
	HTTPPort string `koanf:"http_port"`
	Storage  string `koanf:"storage"`

	DBHost     string `koanf:"db_host"`
	DBPort     string `koanf:"db_port"`
	DBUser     string `koanf:"db_user"`
	DBPassword string `koanf:"db_password"`
	DBName     string `koanf:"db_name"`
	DBSslMode  string `koanf:"db_sslmode"`

	// RedisAddr enables Idempotency-Key handling. Empty disables it.
	RedisAddr      string        `koanf:"redis_addr"`
	RedisPassword  string        `koanf:"redis_password"`
	IdempotencyTTL time.Duration `koanf:"idempotency_ttl"`

	// KafkaBrokers is a comma separated list. Empty keeps events in process.
	KafkaBrokers    string `koanf:"kafka_brokers"`
	OutboxBatchSize int    `koanf:"outbox_batch_size"`

	LogFile  string `koanf:"log_file"`
	LogLevel string `koanf:"log_level"`

	StockCompensation bool `koanf:"stock_compensation"`
}

func defaults() map[string]any {
	return map[string]any{
		"http_port":          "8080",
		"storage":            StorageMemory,
		"db_host":            "localhost",
		"db_port":            "5432",
		"db_user":            "postgres",
		"db_password":        "postgres",
		"db_name":            "shop",
		"db_sslmode":         "disable",
		"idempotency_ttl":    "24h",
		"outbox_batch_size":  100,
		"log_level":          "info",
		"stock_compensation": false,
	}
}

// LoadConfig layers the configuration, later sources winning:
// built in defaults, the optional YAML file at path, then SHOP_* environment
// variables (SHOP_DB_HOST sets db_host). A .env file in the working
// directory is loaded into the environment first when present.
func LoadConfig(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var problems []error
	if c.HTTPPort == "" {
		problems = append(problems, errors.New("http_port required"))
	}
	switch c.Storage {
	case StorageMemory:
	case StoragePostgres:
		if c.DBHost == "" || c.DBName == "" {
			problems = append(problems, errors.New("db_host and db_name required for postgres storage"))
		}
	default:
		problems = append(problems, fmt.Errorf("storage must be %q or %q, got %q", StorageMemory, StoragePostgres, c.Storage))
	}
	if c.RedisAddr != "" && c.IdempotencyTTL <= 0 {
		problems = append(problems, errors.New("idempotency_ttl must be positive"))
	}
	if c.OutboxBatchSize <= 0 {
		problems = append(problems, errors.New("outbox_batch_size must be positive"))
	}
	return errors.Join(problems...)
}

func (c Config) DSN() string {
	return postgres.DSN(c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
