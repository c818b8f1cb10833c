package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Petre55/nk-predictor/internal/domain"
	"github.com/Petre55/nk-predictor/internal/ports"
)

// SeasonSummary is the outcome of a full season run: every round result
// that evaluated successfully plus the final standings.
type SeasonSummary struct {
	// Results holds one entry per evaluated round, in input order.
	Results []*domain.RoundResult

	// Leaderboard is the final cumulative standings.
	Leaderboard []domain.LeaderboardEntry

	// SkippedRounds counts round sources that failed to load or parse
	// and were left out of the season.
	SkippedRounds int
}

// SeasonService drives the engine across many rounds: evaluate each row
// source, render and persist its report, merge totals, and write the
// cumulative leaderboard. The leaderboard builder is an explicit
// accumulator passed per run, so standings are always re-derived fresh
// and no state survives between invocations.
type SeasonService struct {
	evaluator   *RoundEvaluator
	renderer    ports.RoundRenderer
	leaderboard ports.LeaderboardRenderer
	sink        ports.ReportSink
	source      ports.ReportSource
	logger      *slog.Logger
	metrics     ports.MetricsCollector

	// roundNameFormat produces a round title from its 1-based sequence
	// number.
	roundNameFormat string
}

// NewSeasonService wires a SeasonService. A nil logger falls back to
// slog.Default; a nil metrics collector to the no-op implementation.
func NewSeasonService(
	evaluator *RoundEvaluator,
	renderer ports.RoundRenderer,
	leaderboard ports.LeaderboardRenderer,
	sink ports.ReportSink,
	source ports.ReportSource,
	logger *slog.Logger,
	metrics ports.MetricsCollector,
	roundNameFormat string,
) *SeasonService {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &SeasonService{
		evaluator:       evaluator,
		renderer:        renderer,
		leaderboard:     leaderboard,
		sink:            sink,
		source:          source,
		logger:          logger,
		metrics:         metrics,
		roundNameFormat: roundNameFormat,
	}
}

// Run evaluates every round source in order, writes one report per
// round, merges totals through the structured in-process path, and
// writes the final leaderboard. A round whose source cannot be read or
// whose rows cannot structurally form a round is logged and skipped;
// failures writing our own artifacts are fatal.
func (s *SeasonService) Run(
	ctx context.Context,
	sources []ports.RowSource,
	builder ports.LeaderboardBuilder,
) (*SeasonSummary, error) {
	summary := &SeasonSummary{}

	for i, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rows, err := src.Rows(ctx)
		if err != nil {
			summary.SkippedRounds++
			s.logger.Error("skipping round: source unavailable",
				slog.String("source", src.Name()),
				slog.Any("error", err),
			)
			continue
		}

		name := fmt.Sprintf(s.roundNameFormat, i+1)
		result, err := s.evaluator.Evaluate(ctx, name, rows)
		if err != nil {
			summary.SkippedRounds++
			s.logger.Error("skipping round: evaluation failed",
				slog.String("source", src.Name()),
				slog.Any("error", err),
			)
			continue
		}

		text := s.renderer.Render(*result)
		if err := s.sink.WriteReport(ctx, src.Name(), text); err != nil {
			return nil, fmt.Errorf("write report for %s: %w", src.Name(), err)
		}

		builder.IngestResult(*result)
		summary.Results = append(summary.Results, result)
	}

	summary.Leaderboard = builder.Leaderboard()

	if err := s.sink.WriteLeaderboard(ctx, s.leaderboard.Render(summary.Leaderboard)); err != nil {
		return nil, fmt.Errorf("write leaderboard: %w", err)
	}

	s.metrics.RecordGauge("leaderboard_size", float64(len(summary.Leaderboard)), nil)
	return summary, nil
}

// AggregateReports re-derives the standings from every stored report
// text, for reports produced by earlier runs or by an external renderer.
// Source read failures propagate unchanged to the caller; a report with
// no participant rows contributes nothing and is not an error.
func (s *SeasonService) AggregateReports(
	ctx context.Context,
	builder ports.LeaderboardBuilder,
) ([]domain.LeaderboardEntry, error) {
	texts, err := s.source.Reports(ctx)
	if err != nil {
		return nil, err
	}

	for _, text := range texts {
		if matched := builder.IngestReport(text); matched == 0 {
			s.logger.Warn("report contained no participant rows")
		}
	}

	entries := builder.Leaderboard()
	s.metrics.RecordGauge("leaderboard_size", float64(len(entries)), nil)
	return entries, nil
}
