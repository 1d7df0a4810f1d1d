package gormstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ats-backend/internal/model"
)

func (s *Store) jobResponses(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("jobs AS j").
		Select("j.*, r.organization AS organization, u.name AS recruiter_name").
		Joins("JOIN recruiters r ON r.user_id = j.recruiter_id").
		Joins("JOIN users u ON u.id = j.recruiter_id")
}

// ActiveJobs lists active jobs, newest first. When applicantID is not nil the jobs the
// applicant already applied to are left out.
func (s *Store) ActiveJobs(ctx context.Context, applicantID *uuid.UUID) ([]model.JobResponse, error) {
	q := s.jobResponses(ctx).Where("j.status = ?", model.JobStatusActive)
	if applicantID != nil {
		q = q.Where("NOT EXISTS (SELECT 1 FROM applications a WHERE a.job_id = j.id AND a.applicant_id = ?)", *applicantID)
	}

	jobs := []model.JobResponse{}
	if err := q.Order("j.created_at DESC").Order("j.id DESC").Scan(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to list active jobs: %w", err)
	}
	return jobs, nil
}

// RecruiterJobs lists every job posted by a recruiter, newest first.
func (s *Store) RecruiterJobs(ctx context.Context, recruiterID uuid.UUID) ([]model.Job, error) {
	jobs := []model.Job{}
	err := s.db.WithContext(ctx).
		Where("recruiter_id = ?", recruiterID).
		Order("created_at DESC").Order("id DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recruiter jobs: %w", err)
	}
	return jobs, nil
}

// JobByID returns a job with its recruiter details. ok is false when the job does not exist.
func (s *Store) JobByID(ctx context.Context, id uint) (job model.JobResponse, ok bool, err error) {
	jobs := []model.JobResponse{}
	if err := s.jobResponses(ctx).Where("j.id = ?", id).Limit(1).Scan(&jobs).Error; err != nil {
		return model.JobResponse{}, false, fmt.Errorf("failed to retrieve job: %w", err)
	}
	if len(jobs) == 0 {
		return model.JobResponse{}, false, nil
	}
	return jobs[0], true, nil
}

func (s *Store) applicationViews(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("applications AS a").
		Select("a.*, j.title AS job_title, j.location AS job_location, j.status AS job_status, " +
			"u.name AS applicant_name, u.email AS applicant_email, res.stored_file_path AS resume_path").
		Joins("JOIN jobs j ON j.id = a.job_id").
		Joins("JOIN users u ON u.id = a.applicant_id").
		Joins("LEFT JOIN resumes res ON res.id = a.resume_id")
}

// ApplicationsByApplicant lists the applications of an applicant, newest first.
func (s *Store) ApplicationsByApplicant(ctx context.Context, applicantID uuid.UUID) ([]model.ApplicationView, error) {
	views := []model.ApplicationView{}
	err := s.applicationViews(ctx).
		Where("a.applicant_id = ?", applicantID).
		Order("a.applied_at DESC").Order("a.id DESC").
		Scan(&views).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return views, nil
}

// ApplicationsByJob lists the applications to a job, best screening score first.
func (s *Store) ApplicationsByJob(ctx context.Context, jobID uint) ([]model.ApplicationView, error) {
	views := []model.ApplicationView{}
	err := s.applicationViews(ctx).
		Where("a.job_id = ?", jobID).
		Order("a.screening_score DESC").Order("a.applied_at ASC").
		Scan(&views).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list job applications: %w", err)
	}
	return views, nil
}

// ApplicationParticipants is who takes part in an application
type ApplicationParticipants struct {
	ApplicationID  uint
	ApplicantID    uuid.UUID
	RecruiterID    uuid.UUID
	ResumeFileID   uint
	StoredFilePath string
}

// Participants returns the applicant and the job owner of an application together with its resume file.
// ok is false when the application does not exist.
func (s *Store) Participants(ctx context.Context, applicationID uint) (p ApplicationParticipants, ok bool, err error) {
	rows := []ApplicationParticipants{}
	err = s.db.WithContext(ctx).
		Table("applications AS a").
		Select("a.id AS application_id, a.applicant_id, j.recruiter_id, res.file_id AS resume_file_id, res.stored_file_path").
		Joins("JOIN jobs j ON j.id = a.job_id").
		Joins("JOIN resumes res ON res.id = a.resume_id").
		Where("a.id = ?", applicationID).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return ApplicationParticipants{}, false, fmt.Errorf("failed to retrieve application: %w", err)
	}
	if len(rows) == 0 {
		return ApplicationParticipants{}, false, nil
	}
	return rows[0], true, nil
}

func (s *Store) interviewViews(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("interview_schedules AS i").
		Select("i.*, j.id AS job_id, j.title AS job_title, j.location AS job_location, " +
			"u.name AS applicant_name, u.email AS applicant_email").
		Joins("JOIN applications a ON a.id = i.application_id").
		Joins("JOIN jobs j ON j.id = a.job_id").
		Joins("JOIN users u ON u.id = a.applicant_id")
}

// InterviewsByRecruiter lists the interviews of a recruiter by date.
func (s *Store) InterviewsByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]model.InterviewView, error) {
	views := []model.InterviewView{}
	err := s.interviewViews(ctx).
		Where("i.recruiter_id = ?", recruiterID).
		Order("i.interview_date ASC").
		Scan(&views).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	return views, nil
}

// InterviewsByApplication lists every interview booked for an application, latest first.
func (s *Store) InterviewsByApplication(ctx context.Context, applicationID uint) ([]model.InterviewView, error) {
	views := []model.InterviewView{}
	err := s.interviewViews(ctx).
		Where("i.application_id = ?", applicationID).
		Order("i.interview_date DESC").
		Scan(&views).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	return views, nil
}

// OfferByApplication returns the offer of an application, ok is false when there is none.
func (s *Store) OfferByApplication(ctx context.Context, applicationID uint) (offer model.OfferView, ok bool, err error) {
	views := []model.OfferView{}
	err = s.db.WithContext(ctx).
		Table("offers AS o").
		Select("o.*, j.id AS job_id, j.title AS job_title").
		Joins("JOIN applications a ON a.id = o.application_id").
		Joins("JOIN jobs j ON j.id = a.job_id").
		Where("o.application_id = ?", applicationID).
		Limit(1).
		Scan(&views).Error
	if err != nil {
		return model.OfferView{}, false, fmt.Errorf("failed to retrieve offer: %w", err)
	}
	if len(views) == 0 {
		return model.OfferView{}, false, nil
	}
	return views[0], true, nil
}
