package workflow

import (
	"context"
	"time"

	"go.uber.org/zap"

	"ats-backend/internal/model"
)

// ScheduleRequest describes an interview to book
type ScheduleRequest struct {
	ApplicationID uint
	When          time.Time
	// Mode defaults to Online when empty.
	Mode model.InterviewMode
}

// ScheduleInterview books an interview for an application and moves it to Interview Scheduled.
// Booking is serialized per recruiter so that the conflict window check cannot race.
func (c *Coordinator) ScheduleInterview(ctx context.Context, caller Caller, req ScheduleRequest) (model.InterviewSchedule, error) {
	if req.When.IsZero() {
		return model.InterviewSchedule{}, invalidInput("interview date is required")
	}
	mode := req.Mode
	if mode == "" {
		mode = model.InterviewModeOnline
	}
	if !mode.Valid() {
		return model.InterviewSchedule{}, invalidInput("interview mode must be one of %q, %q, %q",
			model.InterviewModeOnline, model.InterviewModeInPerson, model.InterviewModePhone)
	}
	when := req.When.UTC()

	var (
		interview model.InterviewSchedule
		read      applicationRead
	)
	err := c.store.Atomically(ctx, func(tx Tx) error {
		var err error
		read, err = lockOwnedApplication(ctx, tx, caller, req.ApplicationID)
		if err != nil {
			return err
		}
		recruiterID := read.job.RecruiterID
		if err := tx.LockRecruiter(ctx, recruiterID); err != nil {
			return err
		}

		next, err := Next(read.application.Status, TransitionScheduleInterview)
		if err != nil {
			return err
		}

		if _, ok, err := tx.FindScheduledInterview(ctx, req.ApplicationID); err != nil {
			return err
		} else if ok {
			return NewError(CodeAlreadyScheduled, "interview already scheduled for this application", nil)
		}

		nearby, err := tx.ListScheduledInterviews(ctx, recruiterID, when.Add(-ConflictWindow), when.Add(ConflictWindow))
		if err != nil {
			return err
		}
		if conflict, ok := FindConflict(nearby, when, ConflictWindow); ok {
			return NewError(CodeSchedulingConflict,
				"another interview is already scheduled at "+conflict.InterviewDate.UTC().Format(time.RFC3339)+", within 1 hour of this time", nil)
		}

		interview = model.InterviewSchedule{
			ApplicationID: req.ApplicationID,
			RecruiterID:   recruiterID,
			InterviewDate: when,
			Mode:          mode,
			Status:        model.InterviewStatusScheduled,
		}
		if err := tx.CreateInterview(ctx, &interview); err != nil {
			return err
		}
		return tx.UpdateApplicationStatus(ctx, req.ApplicationID, next)
	})
	if err != nil {
		return model.InterviewSchedule{}, err
	}

	c.log.Info("interview scheduled",
		zap.Uint("interview_id", interview.ID),
		zap.Uint("application_id", req.ApplicationID),
		zap.Time("interview_date", when),
	)
	c.dispatch(ctx, Notification{
		Kind:          NotifyInterviewScheduled,
		Recipient:     read.recipient(),
		JobTitle:      read.job.Title,
		InterviewDate: when,
		Mode:          mode,
	})
	return interview, nil
}

// UpdateInterviewStatus marks an interview Completed or Cancelled.
// The application status is left as it is.
func (c *Coordinator) UpdateInterviewStatus(ctx context.Context, caller Caller, interviewID uint, status model.InterviewStatus) (model.InterviewSchedule, error) {
	if status != model.InterviewStatusCompleted && status != model.InterviewStatusCancelled {
		return model.InterviewSchedule{}, invalidInput("interview status must be %q or %q",
			model.InterviewStatusCompleted, model.InterviewStatusCancelled)
	}

	var interview model.InterviewSchedule
	err := c.store.Atomically(ctx, func(tx Tx) error {
		var err error
		interview, err = tx.LockInterview(ctx, interviewID)
		if err != nil {
			return err
		}
		if err := caller.requireOwningRecruiter(interview.RecruiterID); err != nil {
			return err
		}
		if err := tx.UpdateInterviewStatus(ctx, interviewID, status); err != nil {
			return err
		}
		interview.Status = status
		return nil
	})
	if err != nil {
		return model.InterviewSchedule{}, err
	}
	return interview, nil
}
