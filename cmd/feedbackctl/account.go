package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/feedback-in-go/pkg/accounts"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/db"
	gormstore "github.com/doodlesbykumbi/feedback-in-go/pkg/server/store/gorm"
)

// accountCmd represents the account command
var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage user accounts",
	Long:  `Manage the application's user accounts.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'account' requires a subcommand (create, delete, list)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(accountCmd)
}

// newAccountsService connects to the database and builds the accounts
// service the subcommands operate through.
func newAccountsService() (*accounts.Service, error) {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return nil, err
	}
	return accounts.NewService(gormstore.NewAccountsStore(database)), nil
}
