package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SscSPs/price_tracker_app/pkg/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		applied, err := database.RunMigrations(logger, cfg.DatabaseURL, cfg.MigrationsPath)
		if err != nil {
			return err
		}
		if applied {
			fmt.Println("Database migrations applied successfully.")
		} else {
			fmt.Println("No new migrations to apply.")
		}
		return nil
	},
}
