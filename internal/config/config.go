// Package config reads zbeacon settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig is returned when a setting is present but unusable.
var ErrInvalidConfig = errors.New("invalid config")

// Log output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds every runtime setting.
type Config struct {
	// DataDir holds the encrypted profile store.
	DataDir string `env:"ZBEACON_DATA_DIR"`

	// NicknamesFile replaces the embedded nickname dataset when set.
	NicknamesFile string `env:"ZBEACON_NICKNAMES_FILE"`

	MinNicknameWeight float64 `env:"ZBEACON_MIN_NICKNAME_WEIGHT" envDefault:"0"`

	// EmailServices replaces the built-in mail provider list when set.
	EmailServices []string `env:"ZBEACON_EMAIL_SERVICES" envSeparator:","`

	LogLevel  slog.Level `env:"ZBEACON_LOG_LEVEL" envDefault:"info"`
	LogFormat string     `env:"ZBEACON_LOG_FORMAT" envDefault:"text"`
}

// Load reads the given .env files, or ./.env when none are named, and then
// parses the environment. Variables already set win over file values. A
// missing default .env is not an error; a missing named file is.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, fmt.Errorf("load env files: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", errors.Join(ErrInvalidConfig, err))
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir()
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.LogFormat {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("ZBEACON_LOG_FORMAT %q: want text or json: %w", c.LogFormat, ErrInvalidConfig)
	}
	if c.MinNicknameWeight < 0 {
		return fmt.Errorf("ZBEACON_MIN_NICKNAME_WEIGHT %v: must not be negative: %w", c.MinNicknameWeight, ErrInvalidConfig)
	}
	return nil
}

// DefaultDataDir returns $XDG_DATA_HOME/zbeacon, falling back to
// ~/.local/share/zbeacon.
func DefaultDataDir() string {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return filepath.Join(d, "zbeacon")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".zbeacon"
	}
	return filepath.Join(home, ".local", "share", "zbeacon")
}
