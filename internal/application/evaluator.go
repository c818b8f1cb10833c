package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/Petre55/nk-predictor/internal/domain"
	"github.com/Petre55/nk-predictor/internal/ports"
)

// DefaultMaxConcurrency bounds the scoring fan-out when no limit is
// configured.
const DefaultMaxConcurrency = 8

// RoundEvaluator turns one round's raw rows into a finalized, ranked
// result: parse, score every participant, rank. Participant scoring runs
// concurrently; each participant's breakdown is computed independently
// and written to its own pre-sized slot, so no locking is needed. Ranking
// and rendering only ever see the joined, finalized set.
type RoundEvaluator struct {
	parser  *RoundParser
	scorer  ports.ParticipantScorer
	metrics ports.MetricsCollector
	tracer  trace.Tracer

	// maxConcurrency caps the number of participants scored in parallel.
	maxConcurrency int
}

// NewRoundEvaluator creates a RoundEvaluator. A nil metrics collector
// falls back to the no-op implementation; a non-positive concurrency
// limit falls back to DefaultMaxConcurrency.
func NewRoundEvaluator(
	parser *RoundParser,
	scorer ports.ParticipantScorer,
	metrics ports.MetricsCollector,
	maxConcurrency int,
) *RoundEvaluator {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if maxConcurrency <= 0 {
		maxConcurrency = DefaultMaxConcurrency
	}
	return &RoundEvaluator{
		parser:         parser,
		scorer:         scorer,
		metrics:        metrics,
		tracer:         otel.Tracer("round-evaluator"),
		maxConcurrency: maxConcurrency,
	}
}

// Evaluate parses, scores, and ranks one round. It returns a RoundResult
// carrying a fresh execution ID, the ranked participants, and the count
// of rows dropped during parsing. The only fatal parse condition is
// domain.ErrInsufficientData.
func (e *RoundEvaluator) Evaluate(ctx context.Context, name string, rows [][]string) (*domain.RoundResult, error) {
	executionID := uuid.NewString()

	ctx, span := e.tracer.Start(ctx, "RoundEvaluator.Evaluate",
		trace.WithAttributes(
			attribute.String("round.name", name),
			attribute.String("execution.id", executionID),
		),
	)
	defer span.End()

	start := time.Now()

	round, skipped, err := e.parser.Parse(name, rows)
	if err != nil {
		span.RecordError(err)
		e.metrics.RecordCounter("rounds_evaluated_total", 1, map[string]string{"status": "error"})
		return nil, fmt.Errorf("round %s: %w", name, err)
	}
	if skipped > 0 {
		e.metrics.RecordCounter("rows_skipped_total", float64(skipped), map[string]string{"reason": "parse"})
	}

	scored := make([]domain.Participant, len(round.Participants))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.maxConcurrency)

	for i, p := range round.Participants {
		i, p := i, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p.Breakdown = e.scorer.ScoreParticipant(p, round.Official)
			scored[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		e.metrics.RecordCounter("rounds_evaluated_total", 1, map[string]string{"status": "error"})
		return nil, fmt.Errorf("round %s: scoring: %w", name, err)
	}

	round.Participants = scored

	result := &domain.RoundResult{
		Round:       *round,
		ExecutionID: executionID,
		Ranked:      domain.RankByTotal(scored),
		SkippedRows: skipped,
	}

	latency := time.Since(start)
	e.metrics.RecordLatency("evaluate_round", latency, nil)
	e.metrics.RecordCounter("rounds_evaluated_total", 1, map[string]string{"status": "ok"})
	e.metrics.RecordCounter("participants_scored_total", float64(len(scored)), nil)

	span.SetAttributes(
		attribute.Int("round.participants", len(scored)),
		attribute.Int("round.skipped_rows", skipped),
		attribute.Int64("eval.latency_ms", latency.Milliseconds()),
	)

	return result, nil
}
