// Package domain contains pure, dependency-free domain models and types
// for the prediction contest evaluation engine.
package domain

// MatchesPerRound is the fixed number of matches in every round.
// Parsing drops any participant record that cannot supply a guess for
// each of them.
const MatchesPerRound = 5

// Outcome classifies a match result by the sign of the goal difference.
type Outcome int

// Match outcome categories derived from home-away goal difference.
const (
	// OutcomeHome indicates a home win (positive goal difference).
	OutcomeHome Outcome = iota

	// OutcomeDraw indicates a draw (zero goal difference).
	OutcomeDraw

	// OutcomeAway indicates an away win (negative goal difference).
	OutcomeAway
)

// MatchGuess is an ordered (home, away) goal pair. It represents both a
// participant's guess for a match and the official result, which are
// compared by the scoring engine.
type MatchGuess struct {
	// Home is the predicted or actual home-side goal count.
	Home int `json:"home"`

	// Away is the predicted or actual away-side goal count.
	Away int `json:"away"`
}

// Diff returns the home-away goal difference.
func (g MatchGuess) Diff() int { return g.Home - g.Away }

// Outcome returns the outcome category implied by the goal difference.
func (g MatchGuess) Outcome() Outcome {
	switch d := g.Diff(); {
	case d > 0:
		return OutcomeHome
	case d < 0:
		return OutcomeAway
	default:
		return OutcomeDraw
	}
}

// ReplayGuess is the 3-number tie-break guess scored by proximity tiers
// rather than exact match.
type ReplayGuess struct {
	First  int `json:"first"`
	Second int `json:"second"`
	Third  int `json:"third"`
}

// Components returns the triple in positional order for componentwise
// scoring.
func (r ReplayGuess) Components() [3]int { return [3]int{r.First, r.Second, r.Third} }

// OfficialAnswer holds one round's ground truth: the five match results,
// the replay triple, the bonus token, and the display labels consumed by
// the report renderer (two labels per match).
//
// An OfficialAnswer is round-scoped and immutable once parsed. It is never
// itself scored.
type OfficialAnswer struct {
	// Matches are the official results, index-aligned with participant
	// guesses.
	Matches [MatchesPerRound]MatchGuess `json:"matches"`

	// Replay is the official tie-break triple.
	Replay ReplayGuess `json:"replay"`

	// Bonus is the official bonus token, compared by trimmed equality.
	Bonus string `json:"bonus"`

	// Labels are display tokens for the report header, normally two per
	// match. The renderer degrades gracefully when fewer are available.
	Labels []string `json:"labels"`
}

// Round is one parsed batch: the official answer plus every participant
// record that survived parsing.
type Round struct {
	// Name is the human-readable round title carried into the report.
	Name string `json:"name"`

	// Official is the round's ground truth.
	Official OfficialAnswer `json:"official"`

	// Participants are the records eligible for scoring, in input order.
	Participants []Participant `json:"participants"`
}

// RoundResult is the finalized outcome of evaluating one round.
// Ranked holds the scored participants in leaderboard order; the original
// Round participant order is preserved separately for stable-tie checks.
type RoundResult struct {
	// Round is the evaluated round, with participant breakdowns populated.
	Round Round `json:"round"`

	// ExecutionID uniquely identifies this evaluation run for tracing
	// and correlation.
	ExecutionID string `json:"execution_id"`

	// Ranked lists the scored participants sorted by total score
	// descending, ties in input order.
	Ranked []Participant `json:"ranked"`

	// SkippedRows counts participant rows dropped during parsing.
	SkippedRows int `json:"skipped_rows"`
}
