package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "feedbackctl",
	Short: "Feedback application server and management CLI",
	Long:  `feedbackctl runs the feedback web application and manages its database and accounts.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
