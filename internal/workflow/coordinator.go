// Package workflow implements the recruitment workflow engine: the application state machine,
// the resume screening scorer, interview scheduling with conflict detection and the offer workflow.
package workflow

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"ats-backend/internal/model"
)

// Coordinator runs workflow operations against the store, enforcing authorization and
// uniqueness, and dispatches notifications once an operation has committed.
type Coordinator struct {
	store    Store
	notifier Notifier
	log      *zap.Logger

	// Now is the clock used for timestamps set by the workflow.
	Now func() time.Time
}

// NewCoordinator creates a new Coordinator. A nil notifier or logger disables that concern.
func NewCoordinator(store Store, notifier Notifier, logger *zap.Logger) *Coordinator {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{
		store:    store,
		notifier: notifier,
		log:      logger,
		Now:      time.Now,
	}
}

// JobInput is the content of a new job post
type JobInput struct {
	Title        string
	Description  string
	Requirements string
	Location     string
}

func (in JobInput) validate() error {
	missing := []string{}
	if strings.TrimSpace(in.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(in.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(in.Requirements) == "" {
		missing = append(missing, "requirements")
	}
	if strings.TrimSpace(in.Location) == "" {
		missing = append(missing, "location")
	}
	if len(missing) > 0 {
		return invalidInput("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// PostJob creates an active job owned by the calling recruiter.
func (c *Coordinator) PostJob(ctx context.Context, caller Caller, in JobInput) (model.Job, error) {
	if err := caller.requireRecruiter(); err != nil {
		return model.Job{}, err
	}
	if err := in.validate(); err != nil {
		return model.Job{}, err
	}

	job := model.Job{
		RecruiterID:  caller.ID,
		Title:        strings.TrimSpace(in.Title),
		Description:  in.Description,
		Requirements: in.Requirements,
		Location:     strings.TrimSpace(in.Location),
		Status:       model.JobStatusActive,
	}
	err := c.store.Atomically(ctx, func(tx Tx) error {
		return tx.CreateJob(ctx, &job)
	})
	if err != nil {
		return model.Job{}, err
	}

	c.log.Info("job posted", zap.Uint("job_id", job.ID), zap.String("recruiter_id", caller.ID.String()))
	return job, nil
}

// SetJobStatus opens or closes a job owned by the calling recruiter.
func (c *Coordinator) SetJobStatus(ctx context.Context, caller Caller, jobID uint, status model.JobStatus) (model.Job, error) {
	if !status.Valid() {
		return model.Job{}, invalidInput("job status must be %q or %q", model.JobStatusActive, model.JobStatusClosed)
	}

	var job model.Job
	err := c.store.Atomically(ctx, func(tx Tx) error {
		var err error
		job, err = tx.LockJob(ctx, jobID)
		if err != nil {
			return err
		}
		if err := caller.requireOwningRecruiter(job.RecruiterID); err != nil {
			return err
		}
		if err := tx.UpdateJobStatus(ctx, jobID, status); err != nil {
			return err
		}
		job.Status = status
		return nil
	})
	if err != nil {
		return model.Job{}, err
	}
	return job, nil
}

// ResumeInput is the stored resume that comes with a submission
type ResumeInput struct {
	FileID         uint
	StoredFilePath string
	ExtractedText  string
}

// Submit creates the application of the calling applicant to a job, scoring the resume
// against the job requirements. The resume and the application are written together.
func (c *Coordinator) Submit(ctx context.Context, caller Caller, jobID uint, in ResumeInput) (model.Application, error) {
	if err := caller.requireApplicant(); err != nil {
		return model.Application{}, err
	}
	if strings.TrimSpace(in.StoredFilePath) == "" {
		return model.Application{}, invalidInput("resume file is required")
	}

	var application model.Application
	err := c.store.Atomically(ctx, func(tx Tx) error {
		job, err := tx.GetJob(ctx, jobID)
		if err != nil {
			return err
		}
		if job.Status != model.JobStatusActive {
			return NewError(CodeJobClosed, "job is closed", nil)
		}

		resume := model.Resume{
			ApplicantID:    caller.ID,
			FileID:         in.FileID,
			StoredFilePath: in.StoredFilePath,
			ExtractedText:  in.ExtractedText,
		}
		if err := tx.CreateResume(ctx, &resume); err != nil {
			return err
		}

		application = model.Application{
			JobID:          job.ID,
			ApplicantID:    caller.ID,
			ResumeID:       resume.ID,
			Status:         model.ApplicationStatusApplied,
			ScreeningScore: Score(in.ExtractedText, job.Requirements),
			AppliedAt:      c.Now().UTC(),
		}
		return tx.CreateApplication(ctx, &application)
	})
	if err != nil {
		return model.Application{}, err
	}

	c.log.Info("application submitted",
		zap.Uint("application_id", application.ID),
		zap.Uint("job_id", jobID),
		zap.Int("screening_score", application.ScreeningScore),
	)
	return application, nil
}

// Screen marks an application as reviewed.
func (c *Coordinator) Screen(ctx context.Context, caller Caller, applicationID uint) (model.Application, error) {
	application, _, err := c.transition(ctx, caller, applicationID, TransitionScreen)
	return application, err
}

// Shortlist marks an application as a stronger candidate and notifies the applicant.
func (c *Coordinator) Shortlist(ctx context.Context, caller Caller, applicationID uint) (model.Application, error) {
	application, read, err := c.transition(ctx, caller, applicationID, TransitionShortlist)
	if err != nil {
		return model.Application{}, err
	}
	c.dispatch(ctx, Notification{
		Kind:      NotifyShortlisted,
		Recipient: read.recipient(),
		JobTitle:  read.job.Title,
	})
	return application, nil
}

// Reject ends an application that is not terminal yet.
func (c *Coordinator) Reject(ctx context.Context, caller Caller, applicationID uint) (model.Application, error) {
	application, _, err := c.transition(ctx, caller, applicationID, TransitionReject)
	return application, err
}

// applicationRead is the read model assembled for an application inside a transaction.
type applicationRead struct {
	application model.Application
	job         model.Job
	applicant   model.User
}

func (r applicationRead) recipient() Recipient {
	return Recipient{Name: r.applicant.Name, Email: r.applicant.Email}
}

// lockOwnedApplication locks an application and checks that caller owns its job.
func lockOwnedApplication(ctx context.Context, tx Tx, caller Caller, applicationID uint) (applicationRead, error) {
	application, err := tx.LockApplication(ctx, applicationID)
	if err != nil {
		return applicationRead{}, err
	}
	job, err := tx.GetJob(ctx, application.JobID)
	if err != nil {
		return applicationRead{}, err
	}
	if err := caller.requireOwningRecruiter(job.RecruiterID); err != nil {
		return applicationRead{}, err
	}
	applicant, err := tx.GetUser(ctx, application.ApplicantID)
	if err != nil {
		return applicationRead{}, err
	}
	return applicationRead{application: application, job: job, applicant: applicant}, nil
}

func (c *Coordinator) transition(ctx context.Context, caller Caller, applicationID uint, t Transition) (model.Application, applicationRead, error) {
	var read applicationRead
	err := c.store.Atomically(ctx, func(tx Tx) error {
		var err error
		read, err = lockOwnedApplication(ctx, tx, caller, applicationID)
		if err != nil {
			return err
		}
		next, err := Next(read.application.Status, t)
		if err != nil {
			return err
		}
		if err := tx.UpdateApplicationStatus(ctx, applicationID, next); err != nil {
			return err
		}
		read.application.Status = next
		return nil
	})
	if err != nil {
		return model.Application{}, applicationRead{}, err
	}

	c.log.Info("application status changed",
		zap.Uint("application_id", applicationID),
		zap.String("transition", string(t)),
		zap.String("status", string(read.application.Status)),
	)
	return read.application, read, nil
}

// dispatch hands n to the notifier once the operation has committed.
func (c *Coordinator) dispatch(ctx context.Context, n Notification) {
	if n.Recipient.Email == "" {
		c.log.Warn("notification skipped, recipient has no email", zap.String("kind", string(n.Kind)))
		return
	}
	// Notifier is advisory, a panic in it must not surface as a failed operation.
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("notifier panicked", zap.String("kind", string(n.Kind)), zap.Any("panic", r))
		}
	}()
	c.notifier.Notify(context.WithoutCancel(ctx), n)
}
