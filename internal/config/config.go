package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env      string
	HTTPPort string

	Database DatabaseConfig
	Feed     FeedConfig

	RequestTimeout time.Duration
	RateLimit      int
	RateWindow     time.Duration
}

type DatabaseConfig struct {
	Host     string `validate:"required"`
	Port     int    `validate:"min=1,max=65535"`
	User     string `validate:"required"`
	Password string
	Name     string `validate:"required"`
	SSLMode  string `validate:"required"`
}

type FeedConfig struct {
	BaseURL     string `validate:"required,url"`
	EmployerIDs []int64
}

func Load() (*Config, error) {
	cfg := &Config{
		Env:      getEnv("APP_ENV", "local"),
		HTTPPort: getEnv("HTTP_PORT", "8080"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "vacstore"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Feed: FeedConfig{
			BaseURL:     getEnv("FEED_BASE_URL", "https://api.hh.ru"),
			EmployerIDs: getInt64List("EMPLOYER_IDS"),
		},
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 10*time.Second),
		RateLimit:      getInt("RATE_LIMIT", 60),
		RateWindow:     getDuration("RATE_WINDOW", time.Minute),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getInt64List(key string) []int64 {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return nil
	}
	var ids []int64
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
