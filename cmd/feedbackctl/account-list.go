package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// accountListCmd represents the account list command
var accountListCmd = &cobra.Command{
	Use:   "list",
	Short: "List user accounts",
	Long: `List all user accounts.

Example:
  feedbackctl account list`,
	Run: func(cmd *cobra.Command, args []string) {
		service, err := newAccountsService()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
			os.Exit(1)
		}

		all, err := service.List()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to list accounts: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("%-6s %-20s %-30s %s\n", "ID", "USERNAME", "EMAIL", "NAME")
		for _, account := range all {
			fmt.Printf("%-6d %-20s %-30s %s\n", account.ID, account.Username, account.Email, account.FullName())
		}
	},
}

func init() {
	accountCmd.AddCommand(accountListCmd)
}
