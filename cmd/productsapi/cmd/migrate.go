package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yourorg/products-api/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Database migration commands",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Run all pending migrations",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runMigrations(database.Up)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Rollback the last migration",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runMigrations(database.Down)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
}

func runMigrations(direction database.Direction) error {
	databaseURL := viper.GetString("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if err := database.Migrate(databaseURL, direction); err != nil {
		return err
	}

	switch direction {
	case database.Up:
		fmt.Println("Migrations completed successfully")
	case database.Down:
		fmt.Println("Migration rolled back successfully")
	}
	return nil
}
