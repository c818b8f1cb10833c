package scoring

import (
	"fmt"

	"github.com/Petre55/nk-predictor/internal/domain"
)

// ReplayScorer scores the 3-number replay guess by proximity tiers.
// Each component is scored independently by its absolute distance from
// the official value and the three component scores are summed, giving a
// range of 0 to 6 with the default tiers.
//
// Concurrency: ReplayScorer is immutable after creation and safe for
// concurrent use.
type ReplayScorer struct {
	config ReplayConfig
}

// ReplayConfig defines the proximity tiers of replay scoring.
// A component distance d earns ReplayExactPoints when d <= ExactTier,
// ReplayNearPoints when ExactTier < d <= NearTier, and nothing beyond.
type ReplayConfig struct {
	// ExactTier is the inclusive distance bound of the 2-point tier.
	ExactTier int `yaml:"exact_tier" json:"exact_tier" validate:"min=0"`

	// NearTier is the inclusive distance bound of the 1-point tier.
	// Must be at least ExactTier.
	NearTier int `yaml:"near_tier" json:"near_tier" validate:"min=0"`
}

// DefaultReplayConfig returns the contest's standard tiers: within 5 for
// two points, within 10 for one.
func DefaultReplayConfig() ReplayConfig {
	return ReplayConfig{ExactTier: 5, NearTier: 10}
}

// NewReplayScorer creates a ReplayScorer with validated tiers.
// Returns ErrTierOrder when NearTier < ExactTier.
func NewReplayScorer(config ReplayConfig) (*ReplayScorer, error) {
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	if config.NearTier < config.ExactTier {
		return nil, fmt.Errorf("%w: exact=%d, near=%d", ErrTierOrder, config.ExactTier, config.NearTier)
	}
	return &ReplayScorer{config: config}, nil
}

// Score returns the summed tier points across the three components.
func (rs *ReplayScorer) Score(guess, actual domain.ReplayGuess) int {
	g, a := guess.Components(), actual.Components()

	total := 0
	for i := range g {
		d := g[i] - a[i]
		if d < 0 {
			d = -d
		}
		switch {
		case d <= rs.config.ExactTier:
			total += ReplayExactPoints
		case d <= rs.config.NearTier:
			total += ReplayNearPoints
		}
	}
	return total
}

// Validate verifies the scorer's configuration is still coherent.
func (rs *ReplayScorer) Validate() error {
	if err := validate.Struct(rs.config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if rs.config.NearTier < rs.config.ExactTier {
		return fmt.Errorf("%w: exact=%d, near=%d", ErrTierOrder, rs.config.ExactTier, rs.config.NearTier)
	}
	return nil
}
