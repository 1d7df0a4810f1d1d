package database

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ats-backend/internal/model"
	"ats-backend/internal/utilities"
)

// DropAllTables drops every table in the public schema. It is irreversible.
func (d *DBinstanceStruct) DropAllTables(ctx context.Context) error {
	sql := `
	DO $$
		DECLARE
			r RECORD;
		BEGIN
			FOR r IN (SELECT tablename FROM pg_tables WHERE schemaname = 'public') LOOP
				EXECUTE 'DROP TABLE IF EXISTS ' || quote_ident(r.tablename) || ' CASCADE';
			END LOOP;
		END $$;
	`
	if err := d.WithContext(ctx).Exec(sql).Error; err != nil {
		return fmt.Errorf("failed to execute drop command: %w", err)
	}
	d.log.Warn("all tables in public schema dropped")
	return nil
}

// SeedPassword is the password of every demo account created by Seed.
const SeedPassword = "password123"

// SeedResult lists what Seed created
type SeedResult struct {
	Recruiter model.User
	Applicant model.User
	Jobs      []model.Job
}

// ErrAlreadySeeded is returned by Seed when the demo accounts exist.
var ErrAlreadySeeded = errors.New("demo data already exists")

// Seed creates a demo recruiter, a demo applicant and three active jobs in one transaction.
func (d *DBinstanceStruct) Seed(ctx context.Context) (SeedResult, error) {
	var result SeedResult

	hashed, err := utilities.HashPassword(SeedPassword)
	if err != nil {
		return result, fmt.Errorf("failed to hash password: %w", err)
	}

	err = d.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.User{}).Where("email IN ?", []string{"recruiter@ats.com", "applicant@ats.com"}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadySeeded
		}

		recruiter := model.Recruiter{
			User: model.User{
				Name:     "Alice Johnson",
				Email:    "recruiter@ats.com",
				Password: hashed,
				Role:     model.RoleRecruiter,
			},
			Organization: "TechCorp Inc.",
		}
		if err := tx.Create(&recruiter).Error; err != nil {
			return err
		}

		applicant := model.Applicant{
			User: model.User{
				Name:     "Bob Smith",
				Email:    "applicant@ats.com",
				Password: hashed,
				Role:     model.RoleApplicant,
			},
			Skills:     []string{"JavaScript", "React", "Node.js", "MongoDB"},
			Experience: 3,
		}
		if err := tx.Create(&applicant).Error; err != nil {
			return err
		}

		jobs := []model.Job{
			{
				RecruiterID:  recruiter.UserID,
				Title:        "Full Stack Developer",
				Description:  "We are looking for an experienced full stack developer to join our team.",
				Requirements: "JavaScript React Node.js MongoDB Express REST API Git",
				Location:     "New York, NY",
				Status:       model.JobStatusActive,
			},
			{
				RecruiterID:  recruiter.UserID,
				Title:        "Frontend Developer",
				Description:  "Join our frontend team to build amazing user interfaces.",
				Requirements: "React JavaScript TypeScript CSS HTML Tailwind UI/UX",
				Location:     "Remote",
				Status:       model.JobStatusActive,
			},
			{
				RecruiterID:  recruiter.UserID,
				Title:        "Backend Engineer",
				Description:  "Build and maintain our backend services and APIs.",
				Requirements: "Node.js Express MongoDB PostgreSQL REST API Docker AWS",
				Location:     "San Francisco, CA",
				Status:       model.JobStatusActive,
			},
		}
		if err := tx.Omit(clause.Associations).Create(&jobs).Error; err != nil {
			return err
		}

		result = SeedResult{Recruiter: recruiter.User, Applicant: applicant.User, Jobs: jobs}
		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}

	d.log.Info("demo data seeded",
		zap.String("recruiter", result.Recruiter.Email),
		zap.String("applicant", result.Applicant.Email),
		zap.Int("jobs", len(result.Jobs)),
	)
	return result, nil
}
