// Package ports defines the core interfaces that form the contract between
// the domain/application layers and the infrastructure layer.
// These interfaces enable dependency inversion and make the engine testable.
package ports

import (
	"context"
	"time"

	"github.com/Petre55/nk-predictor/internal/domain"
)

// RowSource supplies the raw tabular rows for one round. Implementations
// read CSV files, in-memory fixtures, or whatever the acquisition layer
// produced; the engine only depends on the row layout.
type RowSource interface {
	// Name identifies the source for logging and report naming.
	Name() string

	// Rows returns the round's raw rows. Rows may be of varying width;
	// the parser handles short rows explicitly.
	Rows(ctx context.Context) ([][]string, error)
}

// ReportSource enumerates previously produced round report texts for
// cross-round aggregation. Read failures must surface the underlying
// error unchanged so callers can react to missing or unreadable files.
type ReportSource interface {
	// Reports returns all stored report texts in a deterministic order.
	Reports(ctx context.Context) ([]string, error)
}

// ReportSink persists rendered artifacts: one report per round plus the
// standalone leaderboard text.
type ReportSink interface {
	// WriteReport stores the rendered report for the named round.
	WriteReport(ctx context.Context, round string, text string) error

	// WriteLeaderboard stores the rendered cumulative leaderboard.
	WriteLeaderboard(ctx context.Context, text string) error
}

// ParticipantScorer computes one participant's full score breakdown
// against the official answer. Implementations must be pure: no state
// shared between calls, safe for concurrent use across participants.
type ParticipantScorer interface {
	// ScoreParticipant returns the breakdown for a single participant.
	// It never reads or writes other participants' state.
	ScoreParticipant(p domain.Participant, official domain.OfficialAnswer) domain.ScoreBreakdown
}

// RoundRenderer serializes an evaluated round into the report
// interchange text.
type RoundRenderer interface {
	// Render produces the round's report text in the canonical table
	// markup. It must not mutate the result.
	Render(result domain.RoundResult) string
}

// LeaderboardRenderer serializes cumulative standings into the
// leaderboard table markup.
type LeaderboardRenderer interface {
	// Render produces the leaderboard text for entries in the order
	// provided.
	Render(entries []domain.LeaderboardEntry) string
}

// LeaderboardBuilder accumulates per-participant totals across rounds.
// It is an explicit accumulator value threaded through calls: callers
// create one per aggregation run, so standings are always re-derived
// fresh and nothing ambient persists between runs.
type LeaderboardBuilder interface {
	// IngestReport extracts participant totals from a rendered report
	// text and merges them in, returning the number of rows matched.
	IngestReport(text string) int

	// IngestResult merges an evaluated round through the structured
	// in-process path.
	IngestResult(result domain.RoundResult)

	// Leaderboard returns the current standings, ranked.
	Leaderboard() []domain.LeaderboardEntry
}

// MetricsCollector defines the interface for collecting operational
// metrics. Implementations should integrate with observability platforms
// like Prometheus, or discard everything (see NopMetrics).
type MetricsCollector interface {
	// RecordLatency records the execution time of an operation.
	RecordLatency(operation string, duration time.Duration, labels map[string]string)

	// RecordCounter increments a counter metric.
	RecordCounter(metric string, value float64, labels map[string]string)

	// RecordGauge sets the current value of a gauge metric.
	RecordGauge(metric string, value float64, labels map[string]string)
}

// NopMetrics is a MetricsCollector that discards all measurements.
// It lets the engine run without a metrics backend configured.
type NopMetrics struct{}

// RecordLatency implements MetricsCollector by doing nothing.
func (NopMetrics) RecordLatency(string, time.Duration, map[string]string) {}

// RecordCounter implements MetricsCollector by doing nothing.
func (NopMetrics) RecordCounter(string, float64, map[string]string) {}

// RecordGauge implements MetricsCollector by doing nothing.
func (NopMetrics) RecordGauge(string, float64, map[string]string) {}

// Compile-time verification that NopMetrics implements MetricsCollector.
var _ MetricsCollector = NopMetrics{}
