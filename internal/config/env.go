// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-fht2p/internal/logger"
)

// Log output formats accepted in FHT2P_LOG_FORMAT.
const (
	LogFormatConsole = logger.FormatConsole
	LogFormatJSON    = logger.FormatJSON
)

// processEnv maps the environment variables read by fht2p.
type processEnv struct {
	Log LogSettings `envPrefix:"FHT2P_LOG_"`
}

// LogSettings controls the process logger.
type LogSettings struct {
	// Level is a zerolog level name (e.g. "debug", "info", "warn").
	// Env: FHT2P_LOG_LEVEL
	Level string `env:"LEVEL"`

	// Format is either "console" or "json".
	// Env: FHT2P_LOG_FORMAT
	Format string `env:"FORMAT"`
}

// DefaultLogSettings returns info-level console logging.
func DefaultLogSettings() LogSettings {
	return LogSettings{
		Level:  zerolog.InfoLevel.String(),
		Format: LogFormatConsole,
	}
}

// GetLogSettings returns [DefaultLogSettings] overridden by the non-empty
// FHT2P_LOG_* environment variables. On error the defaults are returned along
// with it, so the caller can still log.
func GetLogSettings() (LogSettings, error) {
	var fromEnv processEnv
	if err := parseEnv(&fromEnv); err != nil {
		return DefaultLogSettings(), err
	}

	settings := DefaultLogSettings()
	if err := mergo.Merge(&settings, fromEnv.Log, mergo.WithOverride); err != nil {
		return DefaultLogSettings(), fmt.Errorf("error merging log settings: %w", err)
	}

	if err := settings.validate(); err != nil {
		return DefaultLogSettings(), err
	}

	return settings, nil
}

func (s LogSettings) validate() error {
	if _, err := zerolog.ParseLevel(s.Level); err != nil {
		return fmt.Errorf("%w: level %q: %w", ErrInvalidLogSettings, s.Level, err)
	}

	if s.Format != LogFormatConsole && s.Format != LogFormatJSON {
		return fmt.Errorf("%w: format %q", ErrInvalidLogSettings, s.Format)
	}

	return nil
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
