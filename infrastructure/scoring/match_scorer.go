package scoring

import (
	"github.com/Petre55/nk-predictor/internal/domain"
)

// MatchScorer scores a single match guess against the official result.
// Scoring is a pure, total function over the four goal counts; no two
// cascade rules can apply with different outcomes because each check only
// runs when the stronger ones have failed.
//
// Concurrency: MatchScorer is stateless and safe for concurrent use.
type MatchScorer struct{}

// NewMatchScorer creates a MatchScorer. The scorer carries no
// configuration; the cascade point values are fixed contest rules.
func NewMatchScorer() MatchScorer { return MatchScorer{} }

// Score returns the points for one guess:
//
//	exact result                      -> 5
//	same outcome, same goal difference -> 3
//	same outcome                       -> 2
//	either goal count matches          -> 1
//	otherwise                          -> 0
func (MatchScorer) Score(guess, actual domain.MatchGuess) int {
	if guess == actual {
		return PointsExact
	}

	if guess.Outcome() == actual.Outcome() {
		if guess.Diff() == actual.Diff() {
			return PointsMargin
		}
		return PointsOutcome
	}

	if guess.Home == actual.Home || guess.Away == actual.Away {
		return PointsComponent
	}

	return 0
}
