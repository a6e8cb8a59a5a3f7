package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show accumulated quiz statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := app.Stats.Snapshot()
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "Quizzes played:  %d\n", snap.TotalQuizzes)
		fmt.Fprintf(out, "Questions seen:  %d\n", snap.TotalQuestions)
		fmt.Fprintf(out, "Correct answers: %d\n", snap.CorrectAnswers)
		fmt.Fprintf(out, "Average score:   %.1f%%\n", snap.AverageScore)
		if snap.BestCategory != "" {
			fmt.Fprintf(out, "Best category:   %s (%.1f%%)\n", snap.BestCategory, snap.BestScore)
		}

		if len(snap.Categories) > 0 {
			fmt.Fprintln(out, "\nBy category:")
			names := make([]string, 0, len(snap.Categories))
			for name := range snap.Categories {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				t := snap.Categories[name]
				fmt.Fprintf(out, "  %s: %d/%d\n", name, t.Correct, t.Total)
			}
		}

		fmt.Fprintln(out, "\nBy difficulty:")
		for _, d := range []string{"easy", "medium", "hard"} {
			t := snap.Difficulties[d]
			fmt.Fprintf(out, "  %s: %d/%d\n", d, t.Correct, t.Total)
		}
		return nil
	},
}

var statsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard all accumulated statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.Stats.Reset(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Statistics reset.")
		return nil
	},
}

func init() {
	statsCmd.AddCommand(statsResetCmd)
	rootCmd.AddCommand(statsCmd)
}
