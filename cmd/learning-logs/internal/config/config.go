// Package config loads the learning-logs CLI configuration.
// Values come from built-in defaults, then an optional YAML file, then
// environment variables.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/learninglogs/learninglogs"
	"github.com/learninglogs/learninglogs/model"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "LEARNING_LOGS_"

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Config holds all configuration for the learning-logs CLI.
type Config struct {
	Database       learninglogs.DatabaseConfig `yaml:"database"`
	Table          string                      `yaml:"table"`           // Topics table name
	ConnectRetries int                         `yaml:"connect_retries"` // Extra ping attempts on connect (0 = none)
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Database:       learninglogs.DefaultDatabaseConfig(),
		Table:          model.TopicsTable,
		ConnectRetries: 0,
	}
}

// Load builds the configuration. A missing file at path is not an error;
// an unreadable or malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyEnv overrides values with LEARNING_LOGS_* environment variables.
func (c *Config) applyEnv() {
	c.Database.Driver = getEnv("DB_DRIVER", c.Database.Driver)
	c.Database.Host = getEnv("DB_HOST", c.Database.Host)
	c.Database.Port = getEnvInt("DB_PORT", c.Database.Port)
	c.Database.User = getEnv("DB_USER", c.Database.User)
	c.Database.Password = getEnv("DB_PASSWORD", c.Database.Password)
	c.Database.Database = getEnv("DB_NAME", c.Database.Database)
	c.Table = getEnv("DB_TABLE", c.Table)
	c.ConnectRetries = getEnvInt("CONNECT_RETRIES", c.ConnectRetries)
}

// Validate checks the configuration.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Database),
		validation.Field(&c.Table, validation.Required, validation.Match(tableNamePattern)),
		validation.Field(&c.ConnectRetries, validation.Min(0), validation.Max(20)),
	)
}

// getEnv retrieves environment variable or returns default value.
// An explicitly empty variable is honored, so DB_PASSWORD= clears a password.
func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(EnvPrefix + key); ok {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves environment variable as integer or returns default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(EnvPrefix + key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
