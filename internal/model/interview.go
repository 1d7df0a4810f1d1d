package model

import (
	"time"

	"github.com/google/uuid"
)

// InterviewMode is how the interview is held
type InterviewMode string

// Interview modes
const (
	InterviewModeOnline   InterviewMode = "Online"
	InterviewModeInPerson InterviewMode = "In-person"
	InterviewModePhone    InterviewMode = "Phone"
)

// Valid reports whether m is a known interview mode.
func (m InterviewMode) Valid() bool {
	switch m {
	case InterviewModeOnline, InterviewModeInPerson, InterviewModePhone:
		return true
	default:
		return false
	}
}

// InterviewStatus is the lifecycle of a booked interview
type InterviewStatus string

// Interview statuses
const (
	InterviewStatusScheduled InterviewStatus = "Scheduled"
	InterviewStatusCompleted InterviewStatus = "Completed"
	InterviewStatusCancelled InterviewStatus = "Cancelled"
)

// InterviewSchedule is an interview slot booked by a recruiter for one application.
// A partial unique index keeps at most one Scheduled row per application.
type InterviewSchedule struct {
	ID            uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	ApplicationID uint            `gorm:"not null;index" json:"application_id"`
	Application   Application     `gorm:"foreignKey:ApplicationID;references:ID" json:"-"`
	RecruiterID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_interview_recruiter_date" json:"recruiter_id"`
	InterviewDate time.Time       `gorm:"type:timestamptz;not null;index:idx_interview_recruiter_date" json:"interview_date"`
	Mode          InterviewMode   `gorm:"type:text;not null;default:'Online'" json:"mode"`
	Status        InterviewStatus `gorm:"type:text;not null;default:'Scheduled'" json:"status"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

// InterviewView is interview with job and applicant details for listing
type InterviewView struct {
	InterviewSchedule
	JobID          uint   `json:"job_id"`
	JobTitle       string `json:"job_title"`
	JobLocation    string `json:"job_location"`
	ApplicantName  string `json:"applicant_name"`
	ApplicantEmail string `json:"applicant_email"`
}
