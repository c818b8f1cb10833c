// Package application orchestrates the contest engine: configuration,
// round parsing, concurrent scoring, and season-wide aggregation.
package application

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/Petre55/nk-predictor/infrastructure/scoring"
)

// EngineConfig is the complete configuration of the evaluation engine,
// loaded from YAML and validated before any round is processed.
type EngineConfig struct {
	// RoundNameFormat is the fmt pattern producing a round title from its
	// 1-based sequence number.
	RoundNameFormat string `yaml:"round_name_format" validate:"required"`

	// MaxConcurrency caps the number of participants scored in parallel
	// within one round.
	MaxConcurrency int `yaml:"max_concurrency" validate:"min=1,max=256"`

	// Scoring holds the scoring rule knobs.
	Scoring scoring.Config `yaml:"scoring"`

	// Reports configures where rendered artifacts are written.
	Reports ReportConfig `yaml:"reports"`
}

// ReportConfig configures report and leaderboard output.
type ReportConfig struct {
	// Dir is the directory holding one report text per round.
	Dir string `yaml:"dir" validate:"required"`

	// LeaderboardFile is the path of the standalone leaderboard artifact.
	// Kept outside Dir so aggregation runs never ingest it as a report.
	LeaderboardFile string `yaml:"leaderboard_file" validate:"required"`

	// LeaderboardTitle is the title row of the leaderboard table.
	LeaderboardTitle string `yaml:"leaderboard_title" validate:"required"`
}

// DefaultEngineConfig returns the standard engine setup: the historical
// round naming scheme, scoring defaults, and the conventional output
// locations.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		RoundNameFormat: "NK - %d. Forduló eredmény",
		MaxConcurrency:  8,
		Scoring:         scoring.DefaultConfig(),
		Reports: ReportConfig{
			Dir:              "eredmenyek",
			LeaderboardFile:  "score.txt",
			LeaderboardTitle: "Összesített eredmény",
		},
	}
}

// configValidate is the package validator for engine configuration.
var configValidate = validator.New()

// Validate checks the configuration's struct constraints plus the
// semantic rules the tags cannot express.
func (c *EngineConfig) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if c.Scoring.Replay.NearTier < c.Scoring.Replay.ExactTier {
		return fmt.Errorf("invalid replay tiers: near=%d below exact=%d",
			c.Scoring.Replay.NearTier, c.Scoring.Replay.ExactTier)
	}
	return nil
}

// LoadEngineConfig reads a YAML configuration file, overlaying it on the
// defaults, and validates the result. A missing path returns the
// validated defaults unchanged.
func LoadEngineConfig(path string) (EngineConfig, error) {
	cfg := DefaultEngineConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return EngineConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return EngineConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return EngineConfig{}, err
	}
	return cfg, nil
}
