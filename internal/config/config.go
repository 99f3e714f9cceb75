package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"bookhub/internal/pkg/validator"
)

const (
	defaultJWTSecret   = "change-me-jwt-secret"
	defaultJWTTTL      = "1h"
	defaultAuthAddr    = ":8081"
	defaultBookingAddr = ":8082"
	defaultAuthAPIURL  = "http://localhost:8081"
	defaultDatabaseURL = "bookhub.db"
)

// Config covers both services; each binary reads the fields it needs.
type Config struct {
	AppEnv      string        `validate:"required"`
	DatabaseURL string        `validate:"required"`
	JWTSecret   string        `validate:"required,min=8"`
	JWTTTL      time.Duration `validate:"required,gt=0"`
	AuthAddr    string        `validate:"required"`
	BookingAddr string        `validate:"required"`
	// AuthAPIURL is where the booking service reaches the identity service
	// for admin enrichment lookups.
	AuthAPIURL string `validate:"required,url"`
}

func Load() (*Config, error) {
	// Missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:      strings.ToLower(strings.TrimSpace(getEnv("APP_ENV", "dev"))),
		DatabaseURL: getEnv("DATABASE_URL", defaultDatabaseURL),
		JWTSecret:   strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),
		AuthAddr:    getEnv("AUTH_ADDR", defaultAuthAddr),
		BookingAddr: getEnv("BOOKING_ADDR", defaultBookingAddr),
		AuthAPIURL:  strings.TrimRight(getEnv("AUTH_API_URL", defaultAuthAPIURL), "/"),
	}

	ttl, err := parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}
	cfg.JWTTTL = ttl

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if fields := validator.Validate(cfg); fields != nil {
		return fmt.Errorf("invalid configuration: %v", fields)
	}
	if isProdLike(cfg.AppEnv) && cfg.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
	}
	return nil
}

func isProdLike(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, raw, err)
	}
	return d, nil
}
