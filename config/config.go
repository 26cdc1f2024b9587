package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config is the full runtime configuration, read from the environment.
// A .env file in the working directory is loaded first when present.
type Config struct {
	Addr        string
	DatabaseURL string

	JWTSecret string
	TokenTTL  time.Duration

	AdminUsername     string
	AdminPasswordHash string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:              envOr("ADDR", ":8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminUsername:     os.Getenv("ADMIN_USERNAME"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	ttl, err := time.ParseDuration(envOr("ADMIN_TOKEN_TTL", "12h"))
	if err != nil {
		return nil, fmt.Errorf("invalid ADMIN_TOKEN_TTL: %w", err)
	}
	cfg.TokenTTL = ttl

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
