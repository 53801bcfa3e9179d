package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/feedback-in-go/pkg/accounts"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/config"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/db"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/feedback"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/logger"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/server"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/server/endpoints"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/server/render"
	gormstore "github.com/doodlesbykumbi/feedback-in-go/pkg/server/store/gorm"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/session"
)

func defaultBindAddress() string {
	if addr := os.Getenv("BIND_ADDRESS"); addr != "" {
		return addr
	}
	return "0.0.0.0"
}

func defaultPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8000"
}

func defaultPortInt() int {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			return p
		}
	}
	return 8000
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the feedback application server",
	Long: `Run the feedback application server

To run the server requires the environment variables DATABASE_URL and
FEEDBACK_SESSION_SECRET.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}

		// Flags win over file and environment values
		if cmd.Flags().Changed("bind-address") {
			cfg.BindAddress, _ = cmd.Flags().GetString("bind-address")
		}
		if cmd.Flags().Changed("port") {
			cfg.Port, _ = cmd.Flags().GetString("port")
		}

		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
			os.Exit(1)
		}

		log := logger.Init(logger.Options{
			Level:  cfg.LogLevel,
			Pretty: cfg.PrettyLogs,
		})

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Info().Msg("Running database migrations...")
			if err := runMigrations(cfg.DatabaseURL); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		database, err := db.Connect(db.Config{URL: cfg.DatabaseURL})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to connect to DB: %v\n", err)
			os.Exit(1)
		}

		renderer, err := render.New()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to parse templates: %v\n", err)
			os.Exit(1)
		}

		accountsStore := gormstore.NewAccountsStore(database)
		feedbackStore := gormstore.NewFeedbackStore(database)
		healthStore := gormstore.NewHealthStore(database)
		sessions := session.NewManager([]byte(cfg.SessionSecret))

		s := server.NewServer(
			database,
			sessions,
			renderer,
			accounts.NewService(accountsStore),
			feedback.NewService(feedbackStore),
			healthStore,
			cfg.BindAddress,
			cfg.Port,
		)

		endpoints.RegisterAll(s)

		log.Info().Msgf("Running server at http://%s...", cfg.Addr())
		log.Fatal().Err(s.Start()).Msg("server stopped")
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", defaultPort(), "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", defaultBindAddress(), "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}
