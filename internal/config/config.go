package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds process-wide settings, loaded once at startup
type Config struct {
	Env              string
	Port             string
	DatabaseURL      string
	DBConnectTimeout time.Duration
	DBConnectRetries int
	JWTSecret        string
	FrontendURL      string
	LogLevel         string
	RedisURL         string
	LoginRateLimit   int // requests per minute per client IP
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// Load reads configuration from environment variables.
// DATABASE_URL and JWT_SECRET are required.
func Load() (*Config, error) {
	cfg := &Config{
		Env:              getEnv("APP_ENV", EnvDevelopment),
		Port:             getEnv("PORT", "5000"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		FrontendURL:      getEnv("FRONTEND_URL", "http://localhost:5173"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		RedisURL:         os.Getenv("REDIS_URL"),
		DBConnectRetries: 5,
		DBConnectTimeout: 5 * time.Second,
		LoginRateLimit:   10,
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL not set in environment")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET not set in environment")
	}
	if cfg.Env != EnvDevelopment && cfg.Env != EnvProduction {
		return nil, fmt.Errorf("invalid APP_ENV %q, expected %s or %s", cfg.Env, EnvDevelopment, EnvProduction)
	}

	if v := os.Getenv("DB_CONNECT_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid DB_CONNECT_TIMEOUT %q", v)
		}
		cfg.DBConnectTimeout = d
	}
	if v := os.Getenv("DB_CONNECT_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid DB_CONNECT_RETRIES %q", v)
		}
		cfg.DBConnectRetries = n
	}
	if v := os.Getenv("LOGIN_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid LOGIN_RATE_LIMIT %q", v)
		}
		cfg.LoginRateLimit = n
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
