package cmd

import (
	"fmt"

	"game-catalog/core/config"
	"game-catalog/core/database"
	"game-catalog/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd creates or updates the cache tables.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the cache tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}

		if err := database.Migrate(db, cacheModels...); err != nil {
			return err
		}
		logg.Info("Cache tables migrated", zap.Int("tables", len(cacheModels)))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
