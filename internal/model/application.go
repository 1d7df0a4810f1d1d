package model

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus is position of an application in the hiring pipeline
type ApplicationStatus string

const (
	// ApplicationStatusApplied is the initial status, set when the applicant submits
	ApplicationStatusApplied ApplicationStatus = "Applied"
	// ApplicationStatusScreened indicates that recruiter has reviewed the resume
	ApplicationStatusScreened ApplicationStatus = "Screened"
	// ApplicationStatusShortlisted indicates a stronger candidate ahead of interview
	ApplicationStatusShortlisted ApplicationStatus = "Shortlisted"
	// ApplicationStatusInterviewScheduled is set when an interview is booked
	ApplicationStatusInterviewScheduled ApplicationStatus = "Interview Scheduled"
	// ApplicationStatusOffered is set when an offer is generated, terminal
	ApplicationStatusOffered ApplicationStatus = "Offered"
	// ApplicationStatusRejected indicates that the application has been rejected, terminal
	ApplicationStatusRejected ApplicationStatus = "Rejected"
)

// Resume is the file an applicant submitted together with its extracted text.
type Resume struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ApplicantID    uuid.UUID `gorm:"type:uuid;not null;index" json:"applicant_id"`
	FileID         uint      `gorm:"not null" json:"file_id"`
	File           File      `gorm:"foreignKey:FileID;references:ID" json:"-"`
	StoredFilePath string    `gorm:"type:text;not null" json:"stored_file_path"`
	ExtractedText  string    `gorm:"type:text" json:"extracted_text,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Application represents a job application record.
// One row per (job, applicant) pair, never deleted.
type Application struct {
	ID             uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	JobID          uint              `gorm:"not null;uniqueIndex:idx_application_job_applicant" json:"job_id"`
	Job            Job               `gorm:"foreignKey:JobID;references:ID" json:"-"`
	ApplicantID    uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_application_job_applicant;index" json:"applicant_id"`
	Applicant      Applicant         `gorm:"foreignKey:ApplicantID;references:UserID" json:"-"`
	ResumeID       uint              `gorm:"not null" json:"resume_id"`
	Resume         Resume            `gorm:"foreignKey:ResumeID;references:ID" json:"-"`
	Status         ApplicationStatus `gorm:"type:text;not null;default:'Applied'" json:"status"`
	ScreeningScore int               `gorm:"not null;default:0" json:"screening_score"`
	AppliedAt      time.Time         `gorm:"type:timestamptz;not null" json:"applied_at"`
	UpdatedAt      time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

// ApplicationView is application assembled with the entities a client needs to display it
type ApplicationView struct {
	Application
	JobTitle       string `json:"job_title"`
	JobLocation    string `json:"job_location"`
	JobStatus      string `json:"job_status"`
	ApplicantName  string `json:"applicant_name,omitempty"`
	ApplicantEmail string `json:"applicant_email,omitempty"`
	ResumePath     string `json:"resume_path,omitempty"`
}
