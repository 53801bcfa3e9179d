package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// accountDeleteCmd represents the account delete command
var accountDeleteCmd = &cobra.Command{
	Use:   "delete [username]",
	Short: "Delete a user account",
	Long: `Delete a user account.

The account's feedback items are removed by the database cascade.

Example:
  feedbackctl account delete alice`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		username := args[0]

		service, err := newAccountsService()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
			os.Exit(1)
		}

		if err := service.Delete(username); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to delete account: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Deleted account '%s'\n", username)
	},
}

func init() {
	accountCmd.AddCommand(accountDeleteCmd)
}
