package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and indexes",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		// connecting runs the migration
		db, err := openDatabase(cfg, logger)
		if err != nil {
			logger.Error("migration failed", zap.Error(err))
			return err
		}
		defer db.Close()

		logger.Info("schema is up to date", zap.String("database", cfg.DBDatabase))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
