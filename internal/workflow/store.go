package workflow

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ats-backend/internal/model"
)

// Store is the persistence collaborator of the workflow.
// Atomically runs fn in one transaction: every write made through tx is committed
// when fn returns nil and discarded otherwise.
type Store interface {
	Atomically(ctx context.Context, fn func(tx Tx) error) error
}

// Tx is the set of reads and writes available inside a transaction.
// Getters return a NotFound *Error when the row does not exist.
// Lock* getters also hold the row until the transaction ends.
type Tx interface {
	GetUser(ctx context.Context, id uuid.UUID) (model.User, error)

	CreateJob(ctx context.Context, job *model.Job) error
	GetJob(ctx context.Context, id uint) (model.Job, error)
	LockJob(ctx context.Context, id uint) (model.Job, error)
	UpdateJobStatus(ctx context.Context, id uint, status model.JobStatus) error

	CreateResume(ctx context.Context, resume *model.Resume) error

	// CreateApplication fails with DuplicateApplication when the (job, applicant) pair exists.
	CreateApplication(ctx context.Context, application *model.Application) error
	GetApplication(ctx context.Context, id uint) (model.Application, error)
	LockApplication(ctx context.Context, id uint) (model.Application, error)
	UpdateApplicationStatus(ctx context.Context, id uint, status model.ApplicationStatus) error

	// LockRecruiter serializes interview booking of one recruiter.
	LockRecruiter(ctx context.Context, recruiterID uuid.UUID) error
	// FindScheduledInterview returns the Scheduled interview of an application, ok is false when there is none.
	FindScheduledInterview(ctx context.Context, applicationID uint) (interview model.InterviewSchedule, ok bool, err error)
	// ListScheduledInterviews returns Scheduled interviews of a recruiter with a date in [from, to].
	ListScheduledInterviews(ctx context.Context, recruiterID uuid.UUID, from, to time.Time) ([]model.InterviewSchedule, error)
	// CreateInterview fails with AlreadyScheduled when the application has a Scheduled interview.
	CreateInterview(ctx context.Context, interview *model.InterviewSchedule) error
	LockInterview(ctx context.Context, id uint) (model.InterviewSchedule, error)
	UpdateInterviewStatus(ctx context.Context, id uint, status model.InterviewStatus) error

	// FindOfferByApplication returns the offer of an application, ok is false when there is none.
	FindOfferByApplication(ctx context.Context, applicationID uint) (offer model.Offer, ok bool, err error)
	// CreateOffer fails with OfferExists when the application already has an offer.
	CreateOffer(ctx context.Context, offer *model.Offer) error
	LockOffer(ctx context.Context, id uint) (model.Offer, error)
	UpdateOfferStatus(ctx context.Context, id uint, status model.OfferStatus) error
}
