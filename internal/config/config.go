// Package config loads ospeople settings from the environment.
//
// Variables are prefixed with OSPEOPLE_ (for example OSPEOPLE_LOG_LEVEL)
// and may also be provided by a .env file; values already present in the
// environment take precedence over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/gabapcia/ospeople/internal/pkg/validator"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name.
const Prefix = "OSPEOPLE"

// Config holds the process settings.
type Config struct {
	// LogLevel is the minimum level written to stderr.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	// Workers is the number of documents validated in parallel.
	Workers int `envconfig:"WORKERS" default:"4" validate:"min=1,max=256"`

	// TelemetryEnabled turns on OTLP export of traces and metrics.
	TelemetryEnabled bool `envconfig:"TELEMETRY_ENABLED" default:"false"`

	// ServiceName identifies the process in telemetry backends.
	ServiceName string `envconfig:"SERVICE_NAME" default:"ospeople" validate:"required"`
}

// Load reads the optional env files (".env" when none are named), then the
// environment, and validates the result. Missing env files are skipped.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("env file %s: %w", file, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("environment: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
