package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Petre55/nk-predictor/infrastructure/report"
	"github.com/Petre55/nk-predictor/internal/domain"
	"github.com/Petre55/nk-predictor/internal/ports"
)

type fakeRowSource struct {
	name string
	rows [][]string
	err  error
}

func (f fakeRowSource) Name() string { return f.name }

func (f fakeRowSource) Rows(context.Context) ([][]string, error) { return f.rows, f.err }

type memorySink struct {
	reports     map[string]string
	leaderboard string
}

func newMemorySink() *memorySink { return &memorySink{reports: make(map[string]string)} }

func (m *memorySink) WriteReport(_ context.Context, round, text string) error {
	m.reports[round] = text
	return nil
}

func (m *memorySink) WriteLeaderboard(_ context.Context, text string) error {
	m.leaderboard = text
	return nil
}

type fakeReportSource struct {
	texts []string
	err   error
}

func (f fakeReportSource) Reports(context.Context) ([]string, error) { return f.texts, f.err }

func newTestSeason(t *testing.T, sink ports.ReportSink, source ports.ReportSource) *SeasonService {
	t.Helper()

	return NewSeasonService(
		newTestEvaluator(t),
		report.NewReportRenderer(),
		report.NewLeaderboardRenderer(""),
		sink,
		source,
		testLogger(),
		nil,
		"NK - %d. Forduló eredmény",
	)
}

func TestSeasonService_Run(t *testing.T) {
	sink := newMemorySink()
	season := newTestSeason(t, sink, fakeReportSource{})

	sources := []ports.RowSource{
		fakeRowSource{name: "round-1", rows: sampleRows()},
		fakeRowSource{name: "round-2", rows: sampleRows()},
	}

	summary, err := season.Run(context.Background(), sources, report.NewScoreAggregator())
	require.NoError(t, err)

	assert.Len(t, summary.Results, 2)
	assert.Zero(t, summary.SkippedRounds)
	assert.Equal(t, "NK - 1. Forduló eredmény", summary.Results[0].Round.Name)
	assert.Equal(t, "NK - 2. Forduló eredmény", summary.Results[1].Round.Name)

	require.Contains(t, sink.reports, "round-1")
	require.Contains(t, sink.reports, "round-2")
	assert.Contains(t, sink.reports["round-1"], "[th]User1[/th]")
	assert.NotEmpty(t, sink.leaderboard)

	// Two identical rounds double every single-round total.
	require.Len(t, summary.Leaderboard, 2)
	single := summary.Results[0].Ranked[0].Breakdown.Total
	assert.Equal(t, summary.Results[0].Ranked[0].Name, summary.Leaderboard[0].Name)
	assert.Equal(t, 2*single, summary.Leaderboard[0].Total)
}

func TestSeasonService_SkipsFailedSources(t *testing.T) {
	sink := newMemorySink()
	season := newTestSeason(t, sink, fakeReportSource{})

	sources := []ports.RowSource{
		fakeRowSource{name: "broken", err: errors.New("disk gone")},
		fakeRowSource{name: "round-2", rows: sampleRows()},
		fakeRowSource{name: "too-short", rows: [][]string{{"1"}}},
	}

	summary, err := season.Run(context.Background(), sources, report.NewScoreAggregator())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.SkippedRounds)
	assert.Len(t, summary.Results, 1)
	assert.NotContains(t, sink.reports, "broken")
	assert.Contains(t, sink.reports, "round-2")
}

func TestSeasonService_EmptySeason(t *testing.T) {
	sink := newMemorySink()
	season := newTestSeason(t, sink, fakeReportSource{})

	summary, err := season.Run(context.Background(), nil, report.NewScoreAggregator())
	require.NoError(t, err)

	assert.Empty(t, summary.Results)
	assert.Empty(t, summary.Leaderboard)
	assert.NotEmpty(t, sink.leaderboard, "an empty leaderboard table is still written")
}

func TestSeasonService_RunCanceledContext(t *testing.T) {
	season := newTestSeason(t, newMemorySink(), fakeReportSource{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := season.Run(ctx, []ports.RowSource{fakeRowSource{name: "round-1", rows: sampleRows()}},
		report.NewScoreAggregator())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSeasonService_AggregateReports(t *testing.T) {
	source := fakeReportSource{texts: []string{
		"[tr][th]Anna[/th][td]17p[/td]",
		"[tr][th]Bence[/th][td]20p[/td]\n[tr][th]Anna[/th][td]5p[/td]",
	}}
	season := newTestSeason(t, newMemorySink(), source)

	entries, err := season.AggregateReports(context.Background(), report.NewScoreAggregator())
	require.NoError(t, err)

	assert.Equal(t, []domain.LeaderboardEntry{
		{Rank: 1, Name: "Anna", Total: 22},
		{Rank: 2, Name: "Bence", Total: 20},
	}, entries)
}

func TestSeasonService_AggregateReportsPropagatesSourceErrors(t *testing.T) {
	wantErr := errors.New("unreadable")
	season := newTestSeason(t, newMemorySink(), fakeReportSource{err: wantErr})

	entries, err := season.AggregateReports(context.Background(), report.NewScoreAggregator())
	assert.Nil(t, entries)
	assert.ErrorIs(t, err, wantErr)
}

func TestSeasonService_StructuredMergeMatchesReingestion(t *testing.T) {
	sink := newMemorySink()
	season := newTestSeason(t, sink, fakeReportSource{})

	sources := []ports.RowSource{fakeRowSource{name: "round-1", rows: sampleRows()}}
	summary, err := season.Run(context.Background(), sources, report.NewScoreAggregator())
	require.NoError(t, err)

	reingested := report.NewScoreAggregator()
	reingested.IngestReport(sink.reports["round-1"])

	assert.Equal(t, summary.Leaderboard, reingested.Leaderboard())
}
