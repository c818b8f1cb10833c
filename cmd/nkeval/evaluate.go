package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/Petre55/nk-predictor/infrastructure/middleware"
	"github.com/Petre55/nk-predictor/infrastructure/report"
	"github.com/Petre55/nk-predictor/infrastructure/scoring"
	"github.com/Petre55/nk-predictor/infrastructure/store"
	"github.com/Petre55/nk-predictor/internal/application"
	"github.com/Petre55/nk-predictor/internal/ports"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [csv...]",
	Short: "Evaluate round CSV files, write reports, and build the leaderboard",
	Long: `Evaluate parses each CSV file as one round (last two rows are the
official answer and the labels row), scores and ranks its participants,
writes one report per round, and writes the cumulative leaderboard built
from all evaluated rounds.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEvaluate,
}

func init() {
	evaluateCmd.Flags().String("metrics-listen", "",
		"serve Prometheus metrics on this address for the duration of the run")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	scorer, err := scoring.NewStandardScorer(cfg.Scoring)
	if err != nil {
		return fmt.Errorf("scorer: %w", err)
	}

	var metrics ports.MetricsCollector = ports.NopMetrics{}
	if addr, _ := cmd.Flags().GetString("metrics-listen"); addr != "" {
		metrics = middleware.NewPrometheusMetrics()
		go func() {
			if err := http.ListenAndServe(addr, promhttp.Handler()); err != nil {
				logger.Error("metrics listener stopped", "error", err)
			}
		}()
	}

	st := store.NewReportStore(cfg.Reports.Dir, cfg.Reports.LeaderboardFile)
	evaluator := application.NewRoundEvaluator(
		application.NewRoundParser(logger), scorer, metrics, cfg.MaxConcurrency)
	season := application.NewSeasonService(
		evaluator,
		report.NewReportRenderer(),
		report.NewLeaderboardRenderer(cfg.Reports.LeaderboardTitle),
		st, st, logger, metrics, cfg.RoundNameFormat)

	sources := make([]ports.RowSource, 0, len(args))
	for _, path := range args {
		sources = append(sources, store.NewCSVSource(path))
	}

	summary, err := season.Run(cmd.Context(), sources, report.NewScoreAggregator())
	if err != nil {
		return err
	}

	for _, result := range summary.Results {
		fmt.Printf("%s (%d participants, %d rows skipped)\n",
			result.Round.Name, len(result.Ranked), result.SkippedRows)
		fmt.Println("Rank\tID\tName\tTotal\tMatches\tReplay\tBonus")
		for rank, p := range result.Ranked {
			matchTotal := 0
			for _, s := range p.Breakdown.MatchScores {
				matchTotal += s
			}
			fmt.Printf("%d\t%d\t%s\t%d\t%d\t%d\t%d\n",
				rank+1, p.ID, p.Name, p.Breakdown.Total,
				matchTotal, p.Breakdown.ReplayScore, p.Breakdown.BonusScore)
		}
		fmt.Println()
	}

	if summary.SkippedRounds > 0 {
		fmt.Fprintf(os.Stderr, "%d round(s) skipped\n", summary.SkippedRounds)
	}
	fmt.Printf("leaderboard written to %s (%d players)\n",
		cfg.Reports.LeaderboardFile, len(summary.Leaderboard))
	return nil
}
