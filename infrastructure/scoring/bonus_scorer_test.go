package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBonusScorer_Score(t *testing.T) {
	tests := []struct {
		name   string
		config BonusConfig
		guess  string
		actual string
		want   int
	}{
		{
			name:   "exact match",
			config: DefaultBonusConfig(),
			guess:  "A",
			actual: "A",
			want:   1,
		},
		{
			name:   "mismatch",
			config: DefaultBonusConfig(),
			guess:  "A",
			actual: "B",
			want:   0,
		},
		{
			name:   "case matters by default",
			config: DefaultBonusConfig(),
			guess:  "a",
			actual: "A",
			want:   0,
		},
		{
			name:   "surrounding whitespace is trimmed",
			config: DefaultBonusConfig(),
			guess:  "  X  ",
			actual: "X",
			want:   1,
		},
		{
			name:   "case insensitive comparison",
			config: BonusConfig{CaseSensitive: false, TrimWhitespace: true},
			guess:  "igen",
			actual: "IGEN",
			want:   1,
		},
		{
			name:   "whitespace preserved when trimming is off",
			config: BonusConfig{CaseSensitive: true, TrimWhitespace: false},
			guess:  " X",
			actual: "X",
			want:   0,
		},
		{
			name:   "empty tokens match",
			config: DefaultBonusConfig(),
			guess:  "",
			actual: "",
			want:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scorer, err := NewBonusScorer(tt.config)
			require.NoError(t, err)
			assert.Equal(t, tt.want, scorer.Score(tt.guess, tt.actual))
		})
	}
}
