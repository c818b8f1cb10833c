package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Petre55/nk-predictor/internal/domain"
)

func TestMatchScorer_Score(t *testing.T) {
	scorer := NewMatchScorer()

	tests := []struct {
		name   string
		guess  domain.MatchGuess
		actual domain.MatchGuess
		want   int
	}{
		{
			name:   "exact result",
			guess:  domain.MatchGuess{Home: 2, Away: 1},
			actual: domain.MatchGuess{Home: 2, Away: 1},
			want:   5,
		},
		{
			name:   "correct outcome and goal difference",
			guess:  domain.MatchGuess{Home: 3, Away: 1},
			actual: domain.MatchGuess{Home: 2, Away: 0},
			want:   3,
		},
		{
			name:   "correct outcome only",
			guess:  domain.MatchGuess{Home: 3, Away: 1},
			actual: domain.MatchGuess{Home: 1, Away: 0},
			want:   2,
		},
		{
			name:   "draw with matching margin",
			guess:  domain.MatchGuess{Home: 0, Away: 0},
			actual: domain.MatchGuess{Home: 1, Away: 1},
			want:   3,
		},
		{
			name:   "home goals match",
			guess:  domain.MatchGuess{Home: 0, Away: 1},
			actual: domain.MatchGuess{Home: 0, Away: 0},
			want:   1,
		},
		{
			name:   "away goals match",
			guess:  domain.MatchGuess{Home: 0, Away: 2},
			actual: domain.MatchGuess{Home: 4, Away: 2},
			want:   1,
		},
		{
			name:   "nothing matches",
			guess:  domain.MatchGuess{Home: 1, Away: 2},
			actual: domain.MatchGuess{Home: 3, Away: 0},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scorer.Score(tt.guess, tt.actual))
		})
	}
}

func TestMatchScorer_ExactMatchReflexive(t *testing.T) {
	scorer := NewMatchScorer()

	// An identical guess always earns full points, whatever the score.
	for home := 0; home <= 6; home++ {
		for away := 0; away <= 6; away++ {
			pair := domain.MatchGuess{Home: home, Away: away}
			assert.Equal(t, PointsExact, scorer.Score(pair, pair),
				"pair %d-%d", home, away)
		}
	}
}
