package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	SchemasDir   string `mapstructure:"schemas_dir" validate:"required"`
	ExportDir    string `mapstructure:"export_dir" validate:"required"`
	LogLevel     string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	BindAddr     string `mapstructure:"bind_addr" validate:"required"`
	DefaultCount int    `mapstructure:"default_count" validate:"gte=0"`
	MaxCount     int    `mapstructure:"max_count" validate:"gte=1"`
	// HistoryDB is a SQLite path or postgres:// URL. Empty disables run
	// history.
	HistoryDB string `mapstructure:"history_db"`
}

const envPrefix = "SEEDER"

var defaults = map[string]interface{}{
	"schemas_dir":   "./schemas",
	"export_dir":    "./exports",
	"log_level":     "info",
	"bind_addr":     ":8080",
	"default_count": 10,
	"max_count":     100000,
	"history_db":    "",
}

// Load reads configuration from a .env file in the working directory, the
// SEEDER_* environment and an optional seeder.yaml, in increasing priority
// for the environment.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit config file. An empty path searches the
// working directory for seeder.yaml and tolerates its absence.
func LoadFile(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("seeder")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
