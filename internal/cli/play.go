package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quizdesk/quizdesk/internal/question"
	"github.com/quizdesk/quizdesk/internal/stats"
)

var (
	playCategory   string
	playDifficulty string
	playCount      int
	playUser       string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run a quiz round",
	RunE: func(cmd *cobra.Command, args []string) error {
		if playCount <= 0 {
			return errors.New("count must be a positive number")
		}
		if strings.TrimSpace(playCategory) == "" {
			return errors.New("category must not be empty")
		}
		if playUser != "" {
			app.Manager.SetCurrentUser(playUser)
		}

		questions, err := app.Manager.GetQuestions(cmd.Context(), playCategory, playDifficulty, playCount)
		if err != nil {
			return err
		}

		score, err := runRound(cmd.OutOrStdout(), cmd.InOrStdin(), questions)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\nYou scored %d/%d.\n", score, len(questions))
		return app.Stats.RecordQuiz(stats.Result{
			Category:   playCategory,
			Difficulty: question.NormalizeDifficulty(playDifficulty),
			Score:      score,
			Total:      len(questions),
		})
	},
}

// runRound plays the questions one by one, reading the chosen option number
// from in. Blank or malformed input counts as a wrong answer.
func runRound(out io.Writer, in io.Reader, questions []question.Question) (int, error) {
	reader := bufio.NewReader(in)
	score := 0
	for i, q := range questions {
		fmt.Fprintf(out, "\nQuestion %d/%d [%s, %s]\n%s\n", i+1, len(questions), q.Category, q.Difficulty, q.Text)
		for j, option := range q.Options {
			fmt.Fprintf(out, "  %d) %s\n", j+1, option)
		}
		fmt.Fprint(out, "Your answer: ")

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return score, fmt.Errorf("read answer: %w", err)
		}
		choice, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil || choice < 1 || choice > len(q.Options) {
			fmt.Fprintf(out, "Wrong. The answer was: %s\n", q.CorrectAnswer)
			continue
		}
		if q.Options[choice-1] == q.CorrectAnswer {
			fmt.Fprintln(out, "Correct!")
			score++
		} else {
			fmt.Fprintf(out, "Wrong. The answer was: %s\n", q.CorrectAnswer)
		}
	}
	return score, nil
}

func init() {
	playCmd.Flags().StringVarP(&playCategory, "category", "c", "Science", "question category")
	playCmd.Flags().StringVarP(&playDifficulty, "difficulty", "d", "easy", "easy, medium or hard")
	playCmd.Flags().IntVarP(&playCount, "count", "n", 5, "number of questions")
	playCmd.Flags().StringVarP(&playUser, "user", "u", "", "username for seen-question tracking")
	rootCmd.AddCommand(playCmd)
}
