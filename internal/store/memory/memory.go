// Package memory is an in-memory workflow store.
// Every transaction works on a copy of the state and holds the store mutex until it ends,
// so transactions are serialized and a failed one leaves nothing behind.
package memory

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"

	"ats-backend/internal/model"
	"ats-backend/internal/workflow"
)

type state struct {
	users        map[uuid.UUID]model.User
	recruiters   map[uuid.UUID]model.Recruiter
	jobs         map[uint]model.Job
	resumes      map[uint]model.Resume
	applications map[uint]model.Application
	interviews   map[uint]model.InterviewSchedule
	offers       map[uint]model.Offer
	lastID       uint
}

func newState() *state {
	return &state{
		users:        map[uuid.UUID]model.User{},
		recruiters:   map[uuid.UUID]model.Recruiter{},
		jobs:         map[uint]model.Job{},
		resumes:      map[uint]model.Resume{},
		applications: map[uint]model.Application{},
		interviews:   map[uint]model.InterviewSchedule{},
		offers:       map[uint]model.Offer{},
	}
}

func (s *state) clone() *state {
	return &state{
		users:        maps.Clone(s.users),
		recruiters:   maps.Clone(s.recruiters),
		jobs:         maps.Clone(s.jobs),
		resumes:      maps.Clone(s.resumes),
		applications: maps.Clone(s.applications),
		interviews:   maps.Clone(s.interviews),
		offers:       maps.Clone(s.offers),
		lastID:       s.lastID,
	}
}

func (s *state) nextID() uint {
	s.lastID++
	return s.lastID
}

// Store implements workflow.Store in memory.
type Store struct {
	mu    sync.Mutex
	state *state
	now   func() time.Time
}

var _ workflow.Store = (*Store)(nil)

// New creates an empty store
func New() *Store {
	return &Store{state: newState(), now: time.Now}
}

// Atomically runs fn against a private copy of the state and publishes the copy when fn succeeds.
func (s *Store) Atomically(ctx context.Context, fn func(tx workflow.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	draft := s.state.clone()
	if err := fn(&tx{state: draft, now: s.now}); err != nil {
		return err
	}
	s.state = draft
	return nil
}

// AddUser registers a user, together with an empty recruiter profile when the user is a recruiter.
// A zero ID is replaced with a fresh one. The stored user is returned.
func (s *Store) AddUser(user model.User, organization string) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = s.now()
	s.state.users[user.ID] = user
	if user.Role == model.RoleRecruiter {
		s.state.recruiters[user.ID] = model.Recruiter{UserID: user.ID, Organization: organization}
	}
	return user
}

// ResumeCount returns the number of stored resumes.
func (s *Store) ResumeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.resumes)
}

// Interviews returns every stored interview of an application.
func (s *Store) Interviews(applicationID uint) []model.InterviewSchedule {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.InterviewSchedule
	for _, interview := range s.state.interviews {
		if interview.ApplicationID == applicationID {
			out = append(out, interview)
		}
	}
	return out
}

type tx struct {
	state *state
	now   func() time.Time
}

func notFound(what string, id any) error {
	return workflow.NewError(workflow.CodeNotFound, fmt.Sprintf("%s %v not found", what, id), nil)
}

func (t *tx) GetUser(_ context.Context, id uuid.UUID) (model.User, error) {
	user, ok := t.state.users[id]
	if !ok {
		return model.User{}, notFound("user", id)
	}
	return user, nil
}

func (t *tx) CreateJob(_ context.Context, job *model.Job) error {
	if _, ok := t.state.users[job.RecruiterID]; !ok {
		return notFound("recruiter", job.RecruiterID)
	}
	job.ID = t.state.nextID()
	job.CreatedAt = t.now()
	t.state.jobs[job.ID] = *job
	return nil
}

func (t *tx) GetJob(_ context.Context, id uint) (model.Job, error) {
	job, ok := t.state.jobs[id]
	if !ok {
		return model.Job{}, notFound("job", id)
	}
	return job, nil
}

func (t *tx) LockJob(ctx context.Context, id uint) (model.Job, error) {
	return t.GetJob(ctx, id)
}

func (t *tx) UpdateJobStatus(_ context.Context, id uint, status model.JobStatus) error {
	job, ok := t.state.jobs[id]
	if !ok {
		return notFound("job", id)
	}
	job.Status = status
	t.state.jobs[id] = job
	return nil
}

func (t *tx) CreateResume(_ context.Context, resume *model.Resume) error {
	resume.ID = t.state.nextID()
	resume.CreatedAt = t.now()
	t.state.resumes[resume.ID] = *resume
	return nil
}

func (t *tx) CreateApplication(_ context.Context, application *model.Application) error {
	for _, existing := range t.state.applications {
		if existing.JobID == application.JobID && existing.ApplicantID == application.ApplicantID {
			return workflow.NewError(workflow.CodeDuplicateApplication, "already applied to this job", nil)
		}
	}
	application.ID = t.state.nextID()
	application.UpdatedAt = t.now()
	t.state.applications[application.ID] = *application
	return nil
}

func (t *tx) GetApplication(_ context.Context, id uint) (model.Application, error) {
	application, ok := t.state.applications[id]
	if !ok {
		return model.Application{}, notFound("application", id)
	}
	return application, nil
}

func (t *tx) LockApplication(ctx context.Context, id uint) (model.Application, error) {
	return t.GetApplication(ctx, id)
}

func (t *tx) UpdateApplicationStatus(_ context.Context, id uint, status model.ApplicationStatus) error {
	application, ok := t.state.applications[id]
	if !ok {
		return notFound("application", id)
	}
	application.Status = status
	application.UpdatedAt = t.now()
	t.state.applications[id] = application
	return nil
}

func (t *tx) LockRecruiter(_ context.Context, recruiterID uuid.UUID) error {
	if _, ok := t.state.recruiters[recruiterID]; !ok {
		return notFound("recruiter", recruiterID)
	}
	return nil
}

func (t *tx) FindScheduledInterview(_ context.Context, applicationID uint) (model.InterviewSchedule, bool, error) {
	for _, interview := range t.state.interviews {
		if interview.ApplicationID == applicationID && interview.Status == model.InterviewStatusScheduled {
			return interview, true, nil
		}
	}
	return model.InterviewSchedule{}, false, nil
}

func (t *tx) ListScheduledInterviews(_ context.Context, recruiterID uuid.UUID, from, to time.Time) ([]model.InterviewSchedule, error) {
	var out []model.InterviewSchedule
	for _, interview := range t.state.interviews {
		if interview.RecruiterID != recruiterID || interview.Status != model.InterviewStatusScheduled {
			continue
		}
		if interview.InterviewDate.Before(from) || interview.InterviewDate.After(to) {
			continue
		}
		out = append(out, interview)
	}
	return out, nil
}

func (t *tx) CreateInterview(ctx context.Context, interview *model.InterviewSchedule) error {
	if interview.Status == model.InterviewStatusScheduled {
		if _, ok, _ := t.FindScheduledInterview(ctx, interview.ApplicationID); ok {
			return workflow.NewError(workflow.CodeAlreadyScheduled, "interview already scheduled for this application", nil)
		}
	}
	interview.ID = t.state.nextID()
	interview.CreatedAt = t.now()
	t.state.interviews[interview.ID] = *interview
	return nil
}

func (t *tx) LockInterview(_ context.Context, id uint) (model.InterviewSchedule, error) {
	interview, ok := t.state.interviews[id]
	if !ok {
		return model.InterviewSchedule{}, notFound("interview", id)
	}
	return interview, nil
}

func (t *tx) UpdateInterviewStatus(_ context.Context, id uint, status model.InterviewStatus) error {
	interview, ok := t.state.interviews[id]
	if !ok {
		return notFound("interview", id)
	}
	interview.Status = status
	t.state.interviews[id] = interview
	return nil
}

func (t *tx) FindOfferByApplication(_ context.Context, applicationID uint) (model.Offer, bool, error) {
	for _, offer := range t.state.offers {
		if offer.ApplicationID == applicationID {
			return offer, true, nil
		}
	}
	return model.Offer{}, false, nil
}

func (t *tx) CreateOffer(ctx context.Context, offer *model.Offer) error {
	if _, ok, _ := t.FindOfferByApplication(ctx, offer.ApplicationID); ok {
		return workflow.NewError(workflow.CodeOfferExists, "offer already exists for this application", nil)
	}
	offer.ID = t.state.nextID()
	offer.CreatedAt = t.now()
	offer.UpdatedAt = offer.CreatedAt
	t.state.offers[offer.ID] = *offer
	return nil
}

func (t *tx) LockOffer(_ context.Context, id uint) (model.Offer, error) {
	offer, ok := t.state.offers[id]
	if !ok {
		return model.Offer{}, notFound("offer", id)
	}
	return offer, nil
}

func (t *tx) UpdateOfferStatus(_ context.Context, id uint, status model.OfferStatus) error {
	offer, ok := t.state.offers[id]
	if !ok {
		return notFound("offer", id)
	}
	offer.Status = status
	offer.UpdatedAt = t.now()
	t.state.offers[id] = offer
	return nil
}
