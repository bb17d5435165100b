package main

import (
	"flag"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// Config holds runtime settings for the estimator CLI. Environment
// variables provide the defaults; command-line flags override them.
type Config struct {
	// ScenarioPath is a scenario YAML file. Empty runs the bundled
	// example scenario.
	ScenarioPath string `envconfig:"ENERGYPROFILE_SCENARIO"`

	// DatasetPath is the postcode-level electricity dataset CSV, only
	// required when the scenario contains usage runs.
	DatasetPath string `envconfig:"ENERGYPROFILE_DATASET" default:"Postcode_level_all_meters_electricity_2024.csv"`

	// OutDir receives chart PNGs and JSON summaries.
	OutDir string `envconfig:"ENERGYPROFILE_OUT_DIR" default:"."`

	// NoCharts skips chart rendering for headless environments.
	NoCharts bool `envconfig:"ENERGYPROFILE_NO_CHARTS" default:"false"`

	// LogLevel is a zerolog level name (trace, debug, info, warn, error).
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// parseConfig loads .env (non-fatal if absent), processes environment
// variables and applies flag overrides from args.
func parseConfig(args []string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment configuration: %w", err)
	}

	fs := flag.NewFlagSet("energyprofile", flag.ContinueOnError)
	fs.StringVar(&cfg.ScenarioPath, "scenario", cfg.ScenarioPath, "Scenario YAML file (empty runs the bundled example)")
	fs.StringVar(&cfg.DatasetPath, "dataset", cfg.DatasetPath, "Postcode-level electricity dataset CSV")
	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "Directory for chart and summary output")
	fs.BoolVar(&cfg.NoCharts, "no-charts", cfg.NoCharts, "Skip chart rendering")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (trace, debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	return &cfg, nil
}

// level returns the parsed zerolog level. parseConfig already validated it.
func (c *Config) level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
