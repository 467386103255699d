package cmd

import (
	"github.com/abhisek/quizbee/internal/history"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizbee",
	Short: "AI quiz maker for kids",
	Long:  "QuizBee — terminal app that turns any topic into a multiple-choice quiz, scores it, and keeps a leaderboard.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("history", "", "Path to the attempt history file (overrides QUIZBEE_HISTORY env var)")

	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveHistoryPath returns the history file path using --history (highest
// priority), then QUIZBEE_HISTORY, then the default XDG path.
func resolveHistoryPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("history"); p != "" {
		return p, nil
	}
	return history.DefaultPath()
}
