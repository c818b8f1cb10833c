// Package middleware provides cross-cutting concerns for the evaluation
// engine.
package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Petre55/nk-predictor/internal/ports"
)

// Metric names emitted by the round evaluator and season service.
const (
	// MetricRoundsEvaluated counts evaluated rounds by status.
	MetricRoundsEvaluated = "rounds_evaluated_total"

	// MetricParticipantsScored counts scored participant records.
	MetricParticipantsScored = "participants_scored_total"

	// MetricRowsSkipped counts dropped participant rows by reason.
	MetricRowsSkipped = "rows_skipped_total"

	// MetricLeaderboardSize tracks the number of distinct names on the
	// cumulative leaderboard.
	MetricLeaderboardSize = "leaderboard_size"
)

// PrometheusMetrics implements the MetricsCollector interface using
// Prometheus. It provides real-time monitoring of round throughput,
// parsing health, and evaluation latency.
type PrometheusMetrics struct {
	roundsEvaluated    *prometheus.CounterVec
	participantsScored prometheus.Counter
	rowsSkipped        *prometheus.CounterVec
	evaluationLatency  *prometheus.HistogramVec
	systemGauges       *prometheus.GaugeVec
}

// NewPrometheusMetrics creates a PrometheusMetrics instance and registers
// all required metrics in the global Prometheus registry.
func NewPrometheusMetrics() *PrometheusMetrics {
	return &PrometheusMetrics{
		roundsEvaluated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricRoundsEvaluated,
				Help: "Total number of rounds evaluated, by status.",
			},
			[]string{"status"},
		),
		participantsScored: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: MetricParticipantsScored,
				Help: "Total number of participant records scored.",
			},
		),
		rowsSkipped: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricRowsSkipped,
				Help: "Total number of participant rows dropped during parsing, by reason.",
			},
			[]string{"reason"},
		),
		evaluationLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "evaluation_duration_seconds",
				Help:    "Execution time of engine operations.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		systemGauges: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "engine_state",
				Help: "Current engine state values.",
			},
			[]string{"metric"},
		),
	}
}

// RecordLatency implements the MetricsCollector interface by recording
// execution latency in a Prometheus histogram.
func (pm *PrometheusMetrics) RecordLatency(
	operation string,
	duration time.Duration,
	labels map[string]string,
) {
	pm.evaluationLatency.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordCounter implements the MetricsCollector interface by incrementing
// Prometheus counters.
func (pm *PrometheusMetrics) RecordCounter(
	metric string, value float64, labels map[string]string,
) {
	switch metric {
	case MetricRoundsEvaluated:
		status, ok := labels["status"]
		if !ok {
			status = "ok"
		}
		pm.roundsEvaluated.WithLabelValues(status).Add(value)
	case MetricParticipantsScored:
		pm.participantsScored.Add(value)
	case MetricRowsSkipped:
		reason, ok := labels["reason"]
		if !ok {
			reason = "unknown"
		}
		pm.rowsSkipped.WithLabelValues(reason).Add(value)
	default:
		pm.systemGauges.WithLabelValues(metric).Add(value)
	}
}

// RecordGauge implements the MetricsCollector interface by setting
// Prometheus gauge values.
func (pm *PrometheusMetrics) RecordGauge(
	metric string, value float64, labels map[string]string,
) {
	pm.systemGauges.WithLabelValues(metric).Set(value)
}

// Compile-time verification that PrometheusMetrics implements
// MetricsCollector.
var _ ports.MetricsCollector = (*PrometheusMetrics)(nil)
