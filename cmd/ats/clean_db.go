package main

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ats-backend/internal/filestore"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"
)

var cleanPrompt = promptui.Select{
	Label: "This will DROP ALL TABLES in the 'public' schema and delete stored resumes. Continue?",
	Items: []string{PromptNo, PromptYes},
}

var cleanDBCmd = &cobra.Command{
	Use:   "clean-db",
	Short: "Drop every table of the database and every stored resume",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			_, answer, err := cleanPrompt.Run()
			if err != nil {
				return err
			}
			if answer != PromptYes {
				fmt.Println("Operation cancelled.")
				return nil
			}
		}

		db, err := openDatabase(cfg, logger)
		if err != nil {
			logger.Error("opening database", zap.Error(err))
			return err
		}
		defer db.Close()

		ctx := cmd.Context()
		if err := db.DropAllTables(ctx); err != nil {
			logger.Error("dropping tables", zap.Error(err))
			return err
		}

		if cfg.GCSBucket != "" {
			storage, err := filestore.NewCloudStorageClient(ctx, cfg.GCSBucket)
			if err != nil {
				logger.Error("connecting to cloud storage", zap.Error(err))
				return err
			}
			defer storage.Close()

			deleted, err := storage.DeletePrefix(ctx, filestore.ResumePrefix+"/")
			if err != nil {
				logger.Error("deleting stored resumes", zap.Int("deleted", deleted), zap.Error(err))
				return err
			}
			logger.Info("stored resumes deleted", zap.String("bucket", cfg.GCSBucket), zap.Int("count", deleted))
		}

		fmt.Println("All tables dropped successfully.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanDBCmd)
	cleanDBCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
}
