// Command nkeval evaluates prediction contest rounds from CSV files,
// writes their forum-table reports, and maintains the cumulative
// leaderboard.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Petre55/nk-predictor/internal/application"
)

var rootCmd = &cobra.Command{
	Use:   "nkeval",
	Short: "Prediction contest evaluator",
	Long: `nkeval scores prediction contest rounds: five match guesses per
participant with a doubled "tuti" pick, a replay tie-break triple, and a
bonus token. It renders one forum-table report per round and accumulates
totals across rounds into a leaderboard.`,
}

func main() {
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(aggregateCmd)

	rootCmd.PersistentFlags().String("config", "", "path to YAML engine configuration")
	rootCmd.PersistentFlags().String("reports-dir", "", "override the report output directory")
	rootCmd.PersistentFlags().String("leaderboard", "", "override the leaderboard output file")
	rootCmd.PersistentFlags().String("round-name-format", "", "override the round title format (one %d for the round number)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the engine configuration, applies flag overrides, and
// builds the CLI logger.
func setup(cmd *cobra.Command) (application.EngineConfig, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := application.LoadEngineConfig(path)
	if err != nil {
		return application.EngineConfig{}, nil, err
	}

	if dir, _ := cmd.Flags().GetString("reports-dir"); dir != "" {
		cfg.Reports.Dir = dir
	}
	if file, _ := cmd.Flags().GetString("leaderboard"); file != "" {
		cfg.Reports.LeaderboardFile = file
	}
	if format, _ := cmd.Flags().GetString("round-name-format"); format != "" {
		cfg.RoundNameFormat = format
	}

	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	return cfg, logger, nil
}
