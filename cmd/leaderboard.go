package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizbee/internal/history"
	"github.com/spf13/cobra"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Print the top quiz attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		historyPath, err := resolveHistoryPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve history path: %w", err)
		}

		ranked := history.Rank(history.NewStore(historyPath).LoadAll())
		if len(ranked) == 0 {
			fmt.Println("No quiz attempts recorded yet.")
			return nil
		}
		if limit > 0 && len(ranked) > limit {
			ranked = ranked[:limit]
		}

		fmt.Printf("%-4s  %-20s  %-4s  %-8s  %-8s  %s\n",
			"#", "Name", "Age", "Score", "Percent", "When")
		fmt.Println(strings.Repeat("─", 68))

		for i, rec := range ranked {
			fmt.Printf("%-4d  %-20s  %-4s  %-8s  %7.2f%%  %s\n",
				i+1,
				truncateName(rec.Name, 20),
				rec.Age,
				fmt.Sprintf("%d/%d", rec.Score, rec.Total),
				rec.Percentage,
				rec.Time,
			)
		}
		return nil
	},
}

// truncateName shortens a name to max runes so the table columns stay
// aligned without splitting multibyte characters.
func truncateName(name string, max int) string {
	r := []rune(name)
	if len(r) <= max {
		return name
	}
	return string(r[:max])
}

func init() {
	leaderboardCmd.Flags().IntP("limit", "n", 10, "Number of attempts to show")
}
