package config

import (
	"errors"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	PostgresURL string `env:"POSTGRES_URL"`

	JWTSecret     string `env:"JWT_SECRET"`
	JWTTTLMinutes int    `env:"JWT_TTL_MINUTES" envDefault:"60"`

	// Client-side reconciliation tuning.
	UploadConcurrency int `env:"UPLOAD_CONCURRENCY" envDefault:"4"`

	ShortCodeLength     int `env:"SHORT_CODE_LENGTH" envDefault:"6"`
	ChallengeTTLSeconds int `env:"CHALLENGE_TTL_SECONDS" envDefault:"300"`
	RecentSearchLimit   int `env:"RECENT_SEARCH_LIMIT" envDefault:"10"`

	LoggerLevel string `env:"LOGGER_LEVEL" envDefault:"info"`
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	if cfg.PostgresURL == "" {
		return nil, errors.New("POSTGRES_URL is required")
	}

	return cfg, nil
}
