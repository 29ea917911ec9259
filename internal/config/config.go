// Package config holds the engine's environment-driven runtime options:
// where the input catalogue lives, where output calendars are written, and
// how the solver backend is invoked.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config is parsed from the process environment with the XESTHORA_ prefix
// (e.g. XESTHORA_INPUT_DIR, XESTHORA_SOLVE_TIME_LIMIT).
type Config struct {
	// InputDir holds the catalogue files (CSV by default, YAML if
	// InputFormat is set to "yaml").
	InputDir string `env:"XESTHORA_INPUT_DIR" envDefault:"testdata/example"`
	// InputFormat selects the catalogue loader: "csv" (default) or "yaml".
	InputFormat string `env:"XESTHORA_INPUT_FORMAT" envDefault:"csv"`
	// OutputDir is where rendered calendars are written.
	OutputDir string `env:"XESTHORA_OUTPUT_DIR" envDefault:"out"`
	// OutputFormat selects the renderer: "json" (default) or "xlsx".
	OutputFormat string `env:"XESTHORA_OUTPUT_FORMAT" envDefault:"json"`

	// CBCBinary is the `cbc` executable invoked by the solver backend.
	CBCBinary string `env:"XESTHORA_CBC_BINARY" envDefault:"cbc"`
	// SolveTimeLimit bounds a single solve; zero means no limit.
	SolveTimeLimit time.Duration `env:"XESTHORA_SOLVE_TIME_LIMIT" envDefault:"0s"`

	// LogLevel is a zap level name ("debug","info","warn","error").
	LogLevel string `env:"XESTHORA_LOG_LEVEL" envDefault:"info"`
	// LogFormat is either "console" or "json".
	LogFormat string `env:"XESTHORA_LOG_FORMAT" envDefault:"console"`
}

// Load parses Config from the environment, applying the declared defaults
// for anything unset.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}
	return cfg, nil
}
