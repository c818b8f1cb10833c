package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Petre55/nk-predictor/infrastructure/scoring"
	"github.com/Petre55/nk-predictor/internal/domain"
)

func newTestEvaluator(t *testing.T) *RoundEvaluator {
	t.Helper()

	scorer, err := scoring.NewStandardScorer(scoring.DefaultConfig())
	require.NoError(t, err)

	return NewRoundEvaluator(NewRoundParser(testLogger()), scorer, nil, 4)
}

func TestRoundEvaluator_Evaluate(t *testing.T) {
	evaluator := newTestEvaluator(t)

	result, err := evaluator.Evaluate(context.Background(), "round-1", sampleRows())
	require.NoError(t, err)

	assert.NotEmpty(t, result.ExecutionID)
	assert.Zero(t, result.SkippedRows)
	require.Len(t, result.Ranked, 2)

	// User1 nailed four results with a doubled tuti plus a full replay and
	// the bonus; User2 trails far behind.
	assert.Equal(t, "User1", result.Ranked[0].Name)
	assert.Equal(t, "User2", result.Ranked[1].Name)
	assert.Greater(t, result.Ranked[0].Breakdown.Total, result.Ranked[1].Breakdown.Total)

	for _, p := range result.Ranked {
		sum := p.Breakdown.ReplayScore + p.Breakdown.BonusScore
		for _, s := range p.Breakdown.MatchScores {
			sum += s
		}
		assert.Equal(t, sum, p.Breakdown.Total)
	}
}

func TestRoundEvaluator_TutiDoublingEndToEnd(t *testing.T) {
	evaluator := newTestEvaluator(t)

	rows := [][]string{
		{"1", "User1", "1", "0", "2", "1", "0", "0", "1", "1", "3", "2", "3", "50", "60", "70", "A"},
		{"", "", "1", "0", "2", "1", "1", "1", "1", "1", "3", "2", "[]", "50", "60", "70", "A"},
		{"AUS", "NED", "ESP", "ITA", "GER", "FRA", "ENG", "POR", "BEL", "CRO"},
	}

	result, err := evaluator.Evaluate(context.Background(), "round-1", rows)
	require.NoError(t, err)
	require.Len(t, result.Ranked, 1)

	breakdown := result.Ranked[0].Breakdown
	assert.Equal(t, [domain.MatchesPerRound]int{5, 5, 6, 5, 5}, breakdown.MatchScores)
	assert.Equal(t, 6, breakdown.ReplayScore)
	assert.Equal(t, 1, breakdown.BonusScore)
	assert.Equal(t, 33, breakdown.Total)
}

func TestRoundEvaluator_InsufficientData(t *testing.T) {
	evaluator := newTestEvaluator(t)

	result, err := evaluator.Evaluate(context.Background(), "round-1", [][]string{{"1"}})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInsufficientData)
}

func TestRoundEvaluator_ReportsSkippedRows(t *testing.T) {
	evaluator := newTestEvaluator(t)

	rows := sampleRows()
	rows = append(rows[:2:2], append([][]string{{"bad"}}, rows[2:]...)...)

	result, err := evaluator.Evaluate(context.Background(), "round-1", rows)
	require.NoError(t, err)
	assert.Equal(t, 1, result.SkippedRows)
	assert.Len(t, result.Ranked, 2)
}

func TestRoundEvaluator_StableTieOrder(t *testing.T) {
	evaluator := newTestEvaluator(t)

	// Identical guess sets must tie and keep input order.
	identical := []string{"0", "name", "1", "0", "2", "1", "0", "0", "1", "1", "3", "2", "[]", "50", "60", "70", "A"}
	var rows [][]string
	names := []string{"First", "Second", "Third", "Fourth"}
	for i, n := range names {
		row := append([]string(nil), identical...)
		row[0] = string(rune('1' + i))
		row[1] = n
		rows = append(rows, row)
	}
	rows = append(rows, sampleRows()[2], sampleRows()[3])

	result, err := evaluator.Evaluate(context.Background(), "round-1", rows)
	require.NoError(t, err)
	require.Len(t, result.Ranked, len(names))

	for i, p := range result.Ranked {
		assert.Equal(t, names[i], p.Name)
	}
}

func TestRoundEvaluator_ContextCancellation(t *testing.T) {
	evaluator := newTestEvaluator(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := evaluator.Evaluate(ctx, "round-1", sampleRows())
	assert.ErrorIs(t, err, context.Canceled)
}
