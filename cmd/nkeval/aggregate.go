package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Petre55/nk-predictor/infrastructure/report"
	"github.com/Petre55/nk-predictor/infrastructure/scoring"
	"github.com/Petre55/nk-predictor/infrastructure/store"
	"github.com/Petre55/nk-predictor/internal/application"
)

var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Rebuild the leaderboard from stored round reports",
	Long: `Aggregate re-derives the cumulative leaderboard from every report
text in the reports directory. Nothing is cached between runs: the
standings are always recomputed from the full set of reports, so report
files must not be deleted or edited between rounds.`,
	Args: cobra.NoArgs,
	RunE: runAggregate,
}

func runAggregate(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	scorer, err := scoring.NewStandardScorer(cfg.Scoring)
	if err != nil {
		return fmt.Errorf("scorer: %w", err)
	}

	st := store.NewReportStore(cfg.Reports.Dir, cfg.Reports.LeaderboardFile)
	leaderboardRenderer := report.NewLeaderboardRenderer(cfg.Reports.LeaderboardTitle)
	evaluator := application.NewRoundEvaluator(
		application.NewRoundParser(logger), scorer, nil, cfg.MaxConcurrency)
	season := application.NewSeasonService(
		evaluator,
		report.NewReportRenderer(),
		leaderboardRenderer,
		st, st, logger, nil, cfg.RoundNameFormat)

	entries, err := season.AggregateReports(cmd.Context(), report.NewScoreAggregator())
	if err != nil {
		return err
	}

	if err := st.WriteLeaderboard(cmd.Context(), leaderboardRenderer.Render(entries)); err != nil {
		return err
	}

	for _, e := range entries {
		fmt.Printf("%d\t%s\t%d\n", e.Rank, e.Name, e.Total)
	}
	fmt.Printf("leaderboard written to %s (%d players)\n",
		cfg.Reports.LeaderboardFile, len(entries))
	return nil
}
