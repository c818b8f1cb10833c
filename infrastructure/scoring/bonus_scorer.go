package scoring

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// BonusScorer scores the categorical bonus guess: one point for equality
// with the official token after normalization, zero otherwise.
//
// Concurrency: BonusScorer is immutable after creation and safe for
// concurrent use.
type BonusScorer struct {
	config BonusConfig
}

// BonusConfig controls string normalization before bonus comparison.
// The default is strict: trimmed, case-sensitive equality.
type BonusConfig struct {
	// CaseSensitive controls case sensitivity during comparison.
	// When false, Unicode-aware case folding is applied to both tokens.
	// Default: true (exact comparison).
	CaseSensitive bool `yaml:"case_sensitive" json:"case_sensitive"`

	// TrimWhitespace controls leading/trailing whitespace normalization.
	// Default: true.
	TrimWhitespace bool `yaml:"trim_whitespace" json:"trim_whitespace"`
}

// DefaultBonusConfig returns the contest's standard comparison mode:
// trimmed, case-sensitive.
func DefaultBonusConfig() BonusConfig {
	return BonusConfig{CaseSensitive: true, TrimWhitespace: true}
}

// NewBonusScorer creates a BonusScorer with the given normalization
// configuration.
func NewBonusScorer(config BonusConfig) (*BonusScorer, error) {
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &BonusScorer{config: config}, nil
}

// Score returns 1 when the normalized guess equals the normalized
// official token, otherwise 0.
func (bs *BonusScorer) Score(guess, actual string) int {
	if bs.prepare(guess) == bs.prepare(actual) {
		return 1
	}
	return 0
}

// prepare normalizes a token according to the configuration: whitespace
// trimming first, then case folding.
func (bs *BonusScorer) prepare(s string) string {
	result := s

	if bs.config.TrimWhitespace {
		result = strings.TrimSpace(result)
	}

	if !bs.config.CaseSensitive {
		// Unicode-aware case folding handles characters that
		// strings.ToLower does not.
		result = cases.Fold().String(result)
	}

	return result
}
