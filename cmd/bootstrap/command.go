package bootstrap

import (
	"medical-scheduling-api/config"
	"medical-scheduling-api/internal/infrastructure/database"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the medical-api CLI. Running it without a
// subcommand starts the HTTP server.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "medical-api",
		Short:        "Medical scheduling REST API (patients, doctors, appointments)",
		SilenceUsage: true,
		RunE:         runServe,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	return rootCmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	app, err := New()
	if err != nil {
		return err
	}
	return app.Run()
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	// migrate up
	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			migrator, err := newMigrator()
			if err != nil {
				return err
			}
			defer migrator.Close()

			return migrator.Up()
		},
	})

	// migrate down
	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Revert applied migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := cmd.Flags().GetInt("steps")
			if err != nil {
				return err
			}

			migrator, err := newMigrator()
			if err != nil {
				return err
			}
			defer migrator.Close()

			return migrator.Down(steps)
		},
	}
	downCmd.Flags().Int("steps", 1, "Number of migrations to revert")
	cmd.AddCommand(downCmd)

	return cmd
}

func newMigrator() (*database.Migrator, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	log := setupLogger(cfg.App.LogLevel)
	return database.NewMigrator(cfg.DB.MigrationURL(), log)
}
