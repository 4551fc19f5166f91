package config

import (
	"errors"
	"os"
	"time"

	env "github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort         int    `env:"HTTP_PORT"          envDefault:"8080"`
	PostgresDSN      string `env:"POSTGRES_DSN"`
	PostgresMaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	LogLevel         string `env:"LOG_LEVEL"          envDefault:"info"`
	JWT              JWTConfig
	KafkaBrokers     []string      `env:"KAFKA_BROKERS"        envSeparator:","`
	KafkaAuditTopic  string        `env:"KAFKA_AUDIT_TOPIC"    envDefault:"logieventos.audit"`
	EventsCloseEvery time.Duration `env:"EVENTS_CLOSE_INTERVAL" envDefault:"1h"`
}

type JWTConfig struct {
	Secret            string        `env:"JWT_SECRET"`
	AccessTokenExpiry time.Duration `env:"JWT_ACCESS_TOKEN_EXPIRY" envDefault:"24h"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	if c.JWT.Secret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}

	return c, nil
}
