package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	historyUser     string
	historyCategory string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage seen-question history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget which questions a user has seen",
	RunE: func(cmd *cobra.Command, args []string) error {
		if historyUser == "" {
			return errors.New("a username is required (--user)")
		}
		app.Manager.SetCurrentUser(historyUser)
		if err := app.Manager.ClearHistory(historyCategory); err != nil {
			return err
		}
		if historyCategory == "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared all history for %q.\n", historyUser)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s history for %q.\n", historyCategory, historyUser)
		}
		return nil
	},
}

func init() {
	historyClearCmd.Flags().StringVarP(&historyUser, "user", "u", "", "username")
	historyClearCmd.Flags().StringVarP(&historyCategory, "category", "c", "", "limit to one category")
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}
