package workflow

import (
	"fmt"
	"slices"

	"ats-backend/internal/model"
)

// Transition names a move of the application state machine.
type Transition string

// Transitions. Scheduling and offering are driven by the interview and offer workflows.
const (
	TransitionScreen            Transition = "screen"
	TransitionShortlist         Transition = "shortlist"
	TransitionReject            Transition = "reject"
	TransitionScheduleInterview Transition = "schedule interview"
	TransitionOffer             Transition = "offer"
)

type transitionRule struct {
	from    []model.ApplicationStatus
	to      model.ApplicationStatus
	failure *Error
}

var transitionRules = map[Transition]transitionRule{
	TransitionScreen: {
		from:    []model.ApplicationStatus{model.ApplicationStatusApplied},
		to:      model.ApplicationStatusScreened,
		failure: ErrInvalidTransition,
	},
	TransitionShortlist: {
		from:    []model.ApplicationStatus{model.ApplicationStatusApplied, model.ApplicationStatusScreened},
		to:      model.ApplicationStatusShortlisted,
		failure: ErrInvalidTransition,
	},
	TransitionReject: {
		from: []model.ApplicationStatus{
			model.ApplicationStatusApplied,
			model.ApplicationStatusScreened,
			model.ApplicationStatusShortlisted,
			model.ApplicationStatusInterviewScheduled,
		},
		to:      model.ApplicationStatusRejected,
		failure: ErrInvalidTransition,
	},
	TransitionScheduleInterview: {
		from:    []model.ApplicationStatus{model.ApplicationStatusScreened, model.ApplicationStatusShortlisted},
		to:      model.ApplicationStatusInterviewScheduled,
		failure: ErrNotReadyForInterview,
	},
	TransitionOffer: {
		from:    []model.ApplicationStatus{model.ApplicationStatusInterviewScheduled},
		to:      model.ApplicationStatusOffered,
		failure: ErrNotInterviewed,
	},
}

// Next returns the status reached by applying t to an application in status from.
// The machine is strict: repeating a transition fails instead of being a no-op.
func Next(from model.ApplicationStatus, t Transition) (model.ApplicationStatus, error) {
	rule, ok := transitionRules[t]
	if !ok {
		return from, invalidInput("unknown transition %q", t)
	}
	if !slices.Contains(rule.from, from) {
		return from, NewError(rule.failure.Code, fmt.Sprintf("cannot %s application in status %q", t, from), nil)
	}
	return rule.to, nil
}

// IsTerminal reports whether no transition leaves s.
func IsTerminal(s model.ApplicationStatus) bool {
	return s == model.ApplicationStatusOffered || s == model.ApplicationStatusRejected
}
