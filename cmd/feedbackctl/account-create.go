package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// accountCreateCmd represents the account create command
var accountCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user account",
	Long: `Create a user account.

This command registers an account directly against the database, the
same way the /register page does. The password is bcrypt-hashed before
it is stored.

Example:
  feedbackctl account create --username alice --email alice@example.com \
    --first-name Alice --last-name Smith --password s3cret`,
	Run: func(cmd *cobra.Command, args []string) {
		firstName, _ := cmd.Flags().GetString("first-name")
		lastName, _ := cmd.Flags().GetString("last-name")
		email, _ := cmd.Flags().GetString("email")
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")

		service, err := newAccountsService()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
			os.Exit(1)
		}

		account, err := service.Register(firstName, lastName, email, username, password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create account: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Created account '%s' (id %d)\n", account.Username, account.ID)
	},
}

func init() {
	accountCmd.AddCommand(accountCreateCmd)
	accountCreateCmd.Flags().String("first-name", "", "First name")
	accountCreateCmd.Flags().String("last-name", "", "Last name")
	accountCreateCmd.Flags().StringP("email", "e", "", "Email address")
	accountCreateCmd.Flags().StringP("username", "u", "", "Username")
	accountCreateCmd.Flags().StringP("password", "p", "", "Password")

	_ = accountCreateCmd.MarkFlagRequired("email")
	_ = accountCreateCmd.MarkFlagRequired("username")
	_ = accountCreateCmd.MarkFlagRequired("password")
}
