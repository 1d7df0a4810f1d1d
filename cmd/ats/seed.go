package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ats-backend/internal/database"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a demo recruiter, a demo applicant and a few active jobs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		db, err := openDatabase(cfg, logger)
		if err != nil {
			logger.Error("opening database", zap.Error(err))
			return err
		}
		defer db.Close()

		result, err := db.Seed(cmd.Context())
		if errors.Is(err, database.ErrAlreadySeeded) {
			logger.Warn("nothing to do", zap.Error(err))
			return nil
		}
		if err != nil {
			logger.Error("seeding failed", zap.Error(err))
			return err
		}

		fmt.Println("Demo accounts created")
		fmt.Printf("  recruiter: %s / %s\n", result.Recruiter.Email, database.SeedPassword)
		fmt.Printf("  applicant: %s / %s\n", result.Applicant.Email, database.SeedPassword)
		for _, job := range result.Jobs {
			fmt.Printf("  job #%d: %s (%s)\n", job.ID, job.Title, job.Location)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
