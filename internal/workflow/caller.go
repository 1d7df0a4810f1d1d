package workflow

import (
	"github.com/google/uuid"

	"ats-backend/internal/model"
)

// Caller is the already authenticated identity an operation runs on behalf of.
type Caller struct {
	ID   uuid.UUID
	Role model.Role
}

func (c Caller) requireRecruiter() error {
	switch c.Role {
	case model.RoleRecruiter:
		return nil
	case model.RoleApplicant:
		return NewError(CodeUnauthorized, "only recruiters can perform this action", nil)
	default:
		return NewError(CodeUnauthorized, "unknown role", nil)
	}
}

func (c Caller) requireApplicant() error {
	switch c.Role {
	case model.RoleApplicant:
		return nil
	case model.RoleRecruiter:
		return NewError(CodeUnauthorized, "only applicants can perform this action", nil)
	default:
		return NewError(CodeUnauthorized, "unknown role", nil)
	}
}

// requireOwningRecruiter checks that caller is the recruiter identified by recruiterID.
func (c Caller) requireOwningRecruiter(recruiterID uuid.UUID) error {
	switch c.Role {
	case model.RoleRecruiter:
		if c.ID != recruiterID {
			return NewError(CodeUnauthorized, "job belongs to another recruiter", nil)
		}
		return nil
	case model.RoleApplicant:
		return NewError(CodeUnauthorized, "only the recruiter owning the job can perform this action", nil)
	default:
		return NewError(CodeUnauthorized, "unknown role", nil)
	}
}

// requireOwningApplicant checks that caller is the applicant identified by applicantID.
func (c Caller) requireOwningApplicant(applicantID uuid.UUID) error {
	switch c.Role {
	case model.RoleApplicant:
		if c.ID != applicantID {
			return NewError(CodeUnauthorized, "application belongs to another applicant", nil)
		}
		return nil
	case model.RoleRecruiter:
		return NewError(CodeUnauthorized, "only the applicant can perform this action", nil)
	default:
		return NewError(CodeUnauthorized, "unknown role", nil)
	}
}

// CanView reports whether caller takes part in an application, either as its applicant
// or as the recruiter owning the job.
func (c Caller) CanView(applicantID, recruiterID uuid.UUID) bool {
	switch c.Role {
	case model.RoleApplicant:
		return c.ID == applicantID
	case model.RoleRecruiter:
		return c.ID == recruiterID
	default:
		return false
	}
}
