package main

import (
	"github.com/spf13/cobra"

	"sitelang/internal/infrastructure/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database migrations (MAPPING_SOURCE=postgres)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.ValidateDatabase(); err != nil {
			return err
		}
		return database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger)
	},
}
