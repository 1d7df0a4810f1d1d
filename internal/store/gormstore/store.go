// Package gormstore implements the workflow store on postgres through gorm.
// Transactions map to database transactions and row locks to SELECT ... FOR UPDATE.
package gormstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ats-backend/internal/model"
	"ats-backend/internal/workflow"
)

const uniqueViolation = "23505"

// Store implements workflow.Store and the read queries used by the HTTP handlers.
type Store struct {
	db *gorm.DB
}

var _ workflow.Store = (*Store)(nil)

// New creates a new Store on db
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Atomically runs fn in a database transaction.
func (s *Store) Atomically(ctx context.Context, fn func(tx workflow.Tx) error) error {
	return s.db.WithContext(ctx).Transaction(func(gtx *gorm.DB) error {
		return fn(&tx{db: gtx})
	})
}

type tx struct {
	db *gorm.DB
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// lookupError turns a failed single row lookup into a workflow error.
func lookupError(what string, id any, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return workflow.NewError(workflow.CodeNotFound, fmt.Sprintf("%s %v not found", what, id), nil)
	}
	return fmt.Errorf("failed to retrieve %s %v: %w", what, id, err)
}

func (t *tx) forUpdate() *gorm.DB {
	return t.db.Clauses(clause.Locking{Strength: "UPDATE"})
}

func (t *tx) GetUser(ctx context.Context, id uuid.UUID) (model.User, error) {
	var user model.User
	if err := t.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return model.User{}, lookupError("user", id, err)
	}
	return user, nil
}

func (t *tx) CreateJob(ctx context.Context, job *model.Job) error {
	if err := t.db.WithContext(ctx).Omit(clause.Associations).Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

func (t *tx) GetJob(ctx context.Context, id uint) (model.Job, error) {
	var job model.Job
	if err := t.db.WithContext(ctx).First(&job, id).Error; err != nil {
		return model.Job{}, lookupError("job", id, err)
	}
	return job, nil
}

func (t *tx) LockJob(ctx context.Context, id uint) (model.Job, error) {
	var job model.Job
	if err := t.forUpdate().WithContext(ctx).First(&job, id).Error; err != nil {
		return model.Job{}, lookupError("job", id, err)
	}
	return job, nil
}

func (t *tx) UpdateJobStatus(ctx context.Context, id uint, status model.JobStatus) error {
	res := t.db.WithContext(ctx).Model(&model.Job{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update job status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return lookupError("job", id, gorm.ErrRecordNotFound)
	}
	return nil
}

func (t *tx) CreateResume(ctx context.Context, resume *model.Resume) error {
	if err := t.db.WithContext(ctx).Omit(clause.Associations).Create(resume).Error; err != nil {
		return fmt.Errorf("failed to create resume: %w", err)
	}
	return nil
}

func (t *tx) CreateApplication(ctx context.Context, application *model.Application) error {
	err := t.db.WithContext(ctx).Omit(clause.Associations).Create(application).Error
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return workflow.NewError(workflow.CodeDuplicateApplication, "already applied to this job", err)
	default:
		return fmt.Errorf("failed to create application: %w", err)
	}
}

func (t *tx) GetApplication(ctx context.Context, id uint) (model.Application, error) {
	var application model.Application
	if err := t.db.WithContext(ctx).First(&application, id).Error; err != nil {
		return model.Application{}, lookupError("application", id, err)
	}
	return application, nil
}

func (t *tx) LockApplication(ctx context.Context, id uint) (model.Application, error) {
	var application model.Application
	if err := t.forUpdate().WithContext(ctx).First(&application, id).Error; err != nil {
		return model.Application{}, lookupError("application", id, err)
	}
	return application, nil
}

func (t *tx) UpdateApplicationStatus(ctx context.Context, id uint, status model.ApplicationStatus) error {
	res := t.db.WithContext(ctx).Model(&model.Application{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update application status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return lookupError("application", id, gorm.ErrRecordNotFound)
	}
	return nil
}

func (t *tx) LockRecruiter(ctx context.Context, recruiterID uuid.UUID) error {
	var recruiter model.Recruiter
	err := t.forUpdate().WithContext(ctx).Select("user_id").Where("user_id = ?", recruiterID).First(&recruiter).Error
	if err != nil {
		return lookupError("recruiter", recruiterID, err)
	}
	return nil
}

func (t *tx) FindScheduledInterview(ctx context.Context, applicationID uint) (model.InterviewSchedule, bool, error) {
	var interviews []model.InterviewSchedule
	err := t.db.WithContext(ctx).
		Where("application_id = ? AND status = ?", applicationID, model.InterviewStatusScheduled).
		Limit(1).
		Find(&interviews).Error
	if err != nil {
		return model.InterviewSchedule{}, false, fmt.Errorf("failed to look up interview: %w", err)
	}
	if len(interviews) == 0 {
		return model.InterviewSchedule{}, false, nil
	}
	return interviews[0], true, nil
}

func (t *tx) ListScheduledInterviews(ctx context.Context, recruiterID uuid.UUID, from, to time.Time) ([]model.InterviewSchedule, error) {
	var interviews []model.InterviewSchedule
	err := t.db.WithContext(ctx).
		Where("recruiter_id = ? AND status = ?", recruiterID, model.InterviewStatusScheduled).
		Where("interview_date BETWEEN ? AND ?", from.UTC(), to.UTC()).
		Order("interview_date ASC").
		Find(&interviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	return interviews, nil
}

func (t *tx) CreateInterview(ctx context.Context, interview *model.InterviewSchedule) error {
	err := t.db.WithContext(ctx).Omit(clause.Associations).Create(interview).Error
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return workflow.NewError(workflow.CodeAlreadyScheduled, "interview already scheduled for this application", err)
	default:
		return fmt.Errorf("failed to create interview: %w", err)
	}
}

func (t *tx) LockInterview(ctx context.Context, id uint) (model.InterviewSchedule, error) {
	var interview model.InterviewSchedule
	if err := t.forUpdate().WithContext(ctx).First(&interview, id).Error; err != nil {
		return model.InterviewSchedule{}, lookupError("interview", id, err)
	}
	return interview, nil
}

func (t *tx) UpdateInterviewStatus(ctx context.Context, id uint, status model.InterviewStatus) error {
	res := t.db.WithContext(ctx).Model(&model.InterviewSchedule{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update interview status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return lookupError("interview", id, gorm.ErrRecordNotFound)
	}
	return nil
}

func (t *tx) FindOfferByApplication(ctx context.Context, applicationID uint) (model.Offer, bool, error) {
	var offers []model.Offer
	if err := t.db.WithContext(ctx).Where("application_id = ?", applicationID).Limit(1).Find(&offers).Error; err != nil {
		return model.Offer{}, false, fmt.Errorf("failed to look up offer: %w", err)
	}
	if len(offers) == 0 {
		return model.Offer{}, false, nil
	}
	return offers[0], true, nil
}

func (t *tx) CreateOffer(ctx context.Context, offer *model.Offer) error {
	err := t.db.WithContext(ctx).Omit(clause.Associations).Create(offer).Error
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return workflow.NewError(workflow.CodeOfferExists, "offer already exists for this application", err)
	default:
		return fmt.Errorf("failed to create offer: %w", err)
	}
}

func (t *tx) LockOffer(ctx context.Context, id uint) (model.Offer, error) {
	var offer model.Offer
	if err := t.forUpdate().WithContext(ctx).First(&offer, id).Error; err != nil {
		return model.Offer{}, lookupError("offer", id, err)
	}
	return offer, nil
}

func (t *tx) UpdateOfferStatus(ctx context.Context, id uint, status model.OfferStatus) error {
	res := t.db.WithContext(ctx).Model(&model.Offer{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update offer status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return lookupError("offer", id, gorm.ErrRecordNotFound)
	}
	return nil
}
