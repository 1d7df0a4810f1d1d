package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Role is the closed set of identities a caller can act as.
type Role string

const (
	// RoleRecruiter posts jobs and drives applications through the pipeline
	RoleRecruiter Role = "recruiter"
	// RoleApplicant applies to jobs and answers offers
	RoleApplicant Role = "applicant"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleRecruiter, RoleApplicant:
		return true
	default:
		return false
	}
}

// User is the identity record shared by recruiters and applicants
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Email     string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"type:text" json:"-"`
	Role      Role      `gorm:"type:text;not null" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Recruiter is profile of user with recruiter role.
// Its row is also used as the per-recruiter lock when booking interviews.
type Recruiter struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	User         User      `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"user"`
	Organization string    `gorm:"type:text;not null" json:"organization"`
}

// Applicant is profile of user with applicant role
type Applicant struct {
	UserID     uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	User       User           `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"user"`
	Skills     pq.StringArray `gorm:"type:text[]" json:"skills"`
	Experience int            `gorm:"default:0" json:"experience"`
}
