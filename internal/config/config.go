package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration. Values come from an optional
// YAML file overridden by environment variables; the .env file is loaded by
// the entrypoints before this runs.
type Config struct {
	ListenAddr         string `yaml:"listen_addr"`
	CatalogDatabaseURL string `yaml:"catalog_database_url"`
	UsersDatabaseURL   string `yaml:"users_database_url"`
	JWTSecret          string `yaml:"jwt_secret"`
	TokenTTLMinutes    int    `yaml:"token_ttl_minutes"`
	PublicBaseURL      string `yaml:"public_base_url"`
	LogLevel           string `yaml:"log_level"`
}

// LoadConfig reads the YAML config file (CONFIG_PATH, default config.yaml)
// if present, applies environment overrides and validates required fields.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ListenAddr:      ":8080",
		TokenTTLMinutes: 60,
		LogLevel:        "info",
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if cfg.CatalogDatabaseURL == "" {
		return nil, errors.New("CATALOG_DATABASE_URL is not set")
	}
	if cfg.UsersDatabaseURL == "" {
		return nil, errors.New("USERS_DATABASE_URL is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	if cfg.TokenTTLMinutes <= 0 {
		return nil, errors.New("token_ttl_minutes must be positive")
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("CATALOG_DATABASE_URL"); v != "" {
		cfg.CatalogDatabaseURL = v
	}
	if v := os.Getenv("USERS_DATABASE_URL"); v != "" {
		cfg.UsersDatabaseURL = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("TOKEN_TTL_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil {
			cfg.TokenTTLMinutes = minutes
		}
	}
	if v := os.Getenv("PUBLIC_BASE_URL"); v != "" {
		cfg.PublicBaseURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// TokenTTL returns the configured token lifetime
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}
