package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the available categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range app.Manager.Categories() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var categoriesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a custom category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.Manager.AddCategory(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added category %q.\n", args[0])
		return nil
	},
}

var categoriesCountsCmd = &cobra.Command{
	Use:   "counts",
	Short: "Show stored question counts per category",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, line := range app.Manager.SortedCounts() {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

func init() {
	categoriesCmd.AddCommand(categoriesAddCmd, categoriesCountsCmd)
	rootCmd.AddCommand(categoriesCmd)
}
