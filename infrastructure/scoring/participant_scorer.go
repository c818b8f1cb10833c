package scoring

import (
	"fmt"

	"github.com/Petre55/nk-predictor/internal/domain"
	"github.com/Petre55/nk-predictor/internal/ports"
)

var _ ports.ParticipantScorer = (*StandardScorer)(nil)

// StandardScorer composes the match, replay, and bonus scorers into the
// full per-participant scoring rule, including the tuti doubling.
//
// Scoring one participant never reads or writes another participant's
// state, so StandardScorer is safe to run concurrently across
// participants and across rounds.
type StandardScorer struct {
	match  MatchScorer
	replay *ReplayScorer
	bonus  *BonusScorer
	config Config
}

// Config collects every scoring knob in one place, suitable for embedding
// in the engine's yaml configuration.
type Config struct {
	// TutiMultiplier scales the score of the participant's designated
	// match. Applied exactly once, after the base score is computed.
	TutiMultiplier int `yaml:"tuti_multiplier" json:"tuti_multiplier" validate:"min=1"`

	// Replay configures the replay proximity tiers.
	Replay ReplayConfig `yaml:"replay" json:"replay"`

	// Bonus configures bonus token normalization.
	Bonus BonusConfig `yaml:"bonus" json:"bonus"`
}

// DefaultConfig returns the standard contest rules: doubled tuti, 5/10
// replay tiers, strict bonus comparison.
func DefaultConfig() Config {
	return Config{
		TutiMultiplier: 2,
		Replay:         DefaultReplayConfig(),
		Bonus:          DefaultBonusConfig(),
	}
}

// NewStandardScorer creates a StandardScorer from the given configuration
// after validating it and its parts.
func NewStandardScorer(config Config) (*StandardScorer, error) {
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	replay, err := NewReplayScorer(config.Replay)
	if err != nil {
		return nil, fmt.Errorf("replay scorer: %w", err)
	}

	bonus, err := NewBonusScorer(config.Bonus)
	if err != nil {
		return nil, fmt.Errorf("bonus scorer: %w", err)
	}

	return &StandardScorer{
		match:  NewMatchScorer(),
		replay: replay,
		bonus:  bonus,
		config: config,
	}, nil
}

// ScoreParticipant computes the full breakdown for one participant.
// Each match is scored against the official result in index order; if the
// participant designated a tuti match, that single score is multiplied by
// the configured multiplier. The total is recomputed in full from the
// parts, never carried over or mutated incrementally.
func (ss *StandardScorer) ScoreParticipant(
	p domain.Participant,
	official domain.OfficialAnswer,
) domain.ScoreBreakdown {
	var breakdown domain.ScoreBreakdown

	for i := range p.Guesses {
		score := ss.match.Score(p.Guesses[i], official.Matches[i])
		if p.HasTuti() && p.TutiMatch == i+1 {
			score *= ss.config.TutiMultiplier
		}
		breakdown.MatchScores[i] = score
	}

	breakdown.ReplayScore = ss.replay.Score(p.Replay, official.Replay)
	breakdown.BonusScore = ss.bonus.Score(p.Bonus, official.Bonus)

	total := breakdown.ReplayScore + breakdown.BonusScore
	for _, s := range breakdown.MatchScores {
		total += s
	}
	breakdown.Total = total

	return breakdown
}

// Validate verifies the composed scorers are properly configured.
func (ss *StandardScorer) Validate() error {
	if err := validate.Struct(ss.config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return ss.replay.Validate()
}
