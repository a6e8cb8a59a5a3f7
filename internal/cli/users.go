package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var registerEmail string

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List registered users",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range app.Accounts.Usernames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var usersRegisterCmd = &cobra.Command{
	Use:   "register <username> <password>",
	Short: "Register a new user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.Accounts.Register(args[0], registerEmail, args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Registered %q.\n", args[0])
		return nil
	},
}

func init() {
	usersRegisterCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "email address")
	usersCmd.AddCommand(usersRegisterCmd)
	rootCmd.AddCommand(usersCmd)
}
