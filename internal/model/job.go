package model

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus tells whether a job still accepts applications
type JobStatus string

const (
	// JobStatusActive accepts applications
	JobStatusActive JobStatus = "active"
	// JobStatusClosed no longer accepts applications
	JobStatusClosed JobStatus = "closed"
)

// Valid reports whether s is a known job status.
func (s JobStatus) Valid() bool {
	return s == JobStatusActive || s == JobStatusClosed
}

// Job is gorm model for store job post data in DB
type Job struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	RecruiterID  uuid.UUID `gorm:"type:uuid;not null;index;<-:create" json:"recruiter_id"`
	Recruiter    Recruiter `gorm:"foreignKey:RecruiterID;references:UserID" json:"-"`
	Title        string    `gorm:"type:text;not null" json:"title"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	Requirements string    `gorm:"type:text;not null" json:"requirements"`
	Location     string    `gorm:"type:text;not null" json:"location"`
	Status       JobStatus `gorm:"type:text;not null;default:'active';index" json:"status"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// JobResponse is job with its recruiter profile, used in listing endpoint
type JobResponse struct {
	Job
	Organization  string `json:"organization"`
	RecruiterName string `json:"recruiter_name"`
}
