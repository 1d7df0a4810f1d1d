package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ats-backend/internal/model"
	"ats-backend/internal/workflow"
)

func TestAtomically_RollsBackOnError(t *testing.T) {
	store := New()
	recruiter := store.AddUser(model.User{Name: "R", Email: "r@ats.com", Role: model.RoleRecruiter}, "TechCorp Inc.")
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.Atomically(ctx, func(tx workflow.Tx) error {
		job := model.Job{RecruiterID: recruiter.ID, Title: "Frontend Developer", Status: model.JobStatusActive}
		require.NoError(t, tx.CreateJob(ctx, &job))
		require.NoError(t, tx.CreateResume(ctx, &model.Resume{StoredFilePath: "x.pdf"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, store.ResumeCount())

	err = store.Atomically(ctx, func(tx workflow.Tx) error {
		_, err := tx.GetJob(ctx, 1)
		return err
	})
	assert.Equal(t, workflow.CodeNotFound, workflow.CodeOf(err))
}

func TestAtomically_CanceledContext(t *testing.T) {
	store := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := store.Atomically(ctx, func(workflow.Tx) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestUniqueConstraints(t *testing.T) {
	store := New()
	recruiter := store.AddUser(model.User{Name: "R", Email: "r@ats.com", Role: model.RoleRecruiter}, "TechCorp Inc.")
	applicant := store.AddUser(model.User{Name: "A", Email: "a@ats.com", Role: model.RoleApplicant}, "")
	ctx := context.Background()

	err := store.Atomically(ctx, func(tx workflow.Tx) error {
		job := model.Job{RecruiterID: recruiter.ID, Status: model.JobStatusActive}
		require.NoError(t, tx.CreateJob(ctx, &job))

		first := model.Application{JobID: job.ID, ApplicantID: applicant.ID, Status: model.ApplicationStatusApplied}
		require.NoError(t, tx.CreateApplication(ctx, &first))
		second := model.Application{JobID: job.ID, ApplicantID: applicant.ID}
		assert.Equal(t, workflow.CodeDuplicateApplication, workflow.CodeOf(tx.CreateApplication(ctx, &second)))

		when := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
		interview := model.InterviewSchedule{ApplicationID: first.ID, RecruiterID: recruiter.ID, InterviewDate: when, Status: model.InterviewStatusScheduled}
		require.NoError(t, tx.CreateInterview(ctx, &interview))
		again := interview
		assert.Equal(t, workflow.CodeAlreadyScheduled, workflow.CodeOf(tx.CreateInterview(ctx, &again)))

		inWindow, err := tx.ListScheduledInterviews(ctx, recruiter.ID, when.Add(-time.Hour), when)
		require.NoError(t, err)
		assert.Len(t, inWindow, 1)

		offer := model.Offer{ApplicationID: first.ID, Salary: 1, Status: model.OfferStatusPending}
		require.NoError(t, tx.CreateOffer(ctx, &offer))
		dup := model.Offer{ApplicationID: first.ID}
		assert.Equal(t, workflow.CodeOfferExists, workflow.CodeOf(tx.CreateOffer(ctx, &dup)))
		return nil
	})
	require.NoError(t, err)

	assert.Len(t, store.Interviews(1), 0)
	assert.Len(t, store.Interviews(2), 1)
}
