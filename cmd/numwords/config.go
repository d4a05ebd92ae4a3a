package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envConfig holds the settings read from the environment. Flags override them.
type envConfig struct {
	Language string   `env:"NUMWORDS_LANGUAGE" envDefault:"en"`
	Lexicons []string `env:"NUMWORDS_LEXICONS" envSeparator:","`
	LogLevel string   `env:"NUMWORDS_LOG_LEVEL" envDefault:"warn"`
}

// loadEnvConfig reads envFile (when present) into the process environment
// and parses envConfig from it. A missing env file is not an error.
func loadEnvConfig(envFile string, environ map[string]string) (envConfig, error) {
	var cfg envConfig

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("parse environment: %w", err)
	}

	return cfg, nil
}

func parseLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log level %q: %w", raw, err)
	}
	return level, nil
}
