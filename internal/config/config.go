package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv           string
	Port             string
	DatabaseURL      string
	RedisURL         string
	LogLevel         string
	LogFormat        string
	SummaryCacheTTL  time.Duration
	TrendWindowDays  int
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisURL:    getEnv("REDIS_URL", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
	}

	ttlSeconds, err := getEnvInt("SUMMARY_CACHE_TTL_SECONDS", 10)
	if err != nil {
		return nil, err
	}
	if ttlSeconds < 0 {
		return nil, fmt.Errorf("SUMMARY_CACHE_TTL_SECONDS must not be negative")
	}
	cfg.SummaryCacheTTL = time.Duration(ttlSeconds) * time.Second

	cfg.TrendWindowDays, err = getEnvInt("TREND_WINDOW_DAYS", 7)
	if err != nil {
		return nil, err
	}
	if cfg.TrendWindowDays < 1 {
		return nil, fmt.Errorf("TREND_WINDOW_DAYS must be at least 1")
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("LOG_FORMAT must be \"text\" or \"json\", got %q", cfg.LogFormat)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
