package workflow

import (
	"errors"
	"fmt"
)

// Code identifies a business rule failure. Codes are stable and exposed to clients.
type Code string

// Error codes of the recruitment workflow
const (
	CodeUnauthorized         Code = "UNAUTHORIZED"
	CodeNotFound             Code = "NOT_FOUND"
	CodeInvalidTransition    Code = "INVALID_TRANSITION"
	CodeDuplicateApplication Code = "DUPLICATE_APPLICATION"
	CodeAlreadyScheduled     Code = "ALREADY_SCHEDULED"
	CodeSchedulingConflict   Code = "SCHEDULING_CONFLICT"
	CodeNotReadyForInterview Code = "NOT_READY_FOR_INTERVIEW"
	CodeNotInterviewed       Code = "NOT_INTERVIEWED"
	CodeOfferExists          Code = "OFFER_EXISTS"
	CodeInvalidInput         Code = "INVALID_INPUT"
	CodeJobClosed            Code = "JOB_CLOSED"
)

// Error is a recoverable business rule failure.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error carrying the same code, so sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// NewError builds an Error with the given code and message.
func NewError(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Sentinels for errors.Is checks
var (
	ErrUnauthorized         = &Error{Code: CodeUnauthorized, Message: "not authorized"}
	ErrNotFound             = &Error{Code: CodeNotFound, Message: "not found"}
	ErrInvalidTransition    = &Error{Code: CodeInvalidTransition, Message: "invalid status transition"}
	ErrDuplicateApplication = &Error{Code: CodeDuplicateApplication, Message: "already applied to this job"}
	ErrAlreadyScheduled     = &Error{Code: CodeAlreadyScheduled, Message: "interview already scheduled for this application"}
	ErrSchedulingConflict   = &Error{Code: CodeSchedulingConflict, Message: "another interview is already scheduled within 1 hour of this time"}
	ErrNotReadyForInterview = &Error{Code: CodeNotReadyForInterview, Message: "candidate must be shortlisted or screened before scheduling"}
	ErrNotInterviewed       = &Error{Code: CodeNotInterviewed, Message: "offer can only be generated after interview is scheduled"}
	ErrOfferExists          = &Error{Code: CodeOfferExists, Message: "offer already exists for this application"}
	ErrInvalidInput         = &Error{Code: CodeInvalidInput, Message: "invalid input"}
	ErrJobClosed            = &Error{Code: CodeJobClosed, Message: "job is closed"}
)

// CodeOf returns the workflow code carried by err, or "" for faults outside the taxonomy.
func CodeOf(err error) Code {
	var wfErr *Error
	if errors.As(err, &wfErr) {
		return wfErr.Code
	}
	return ""
}

func notFound(what string, err error) *Error {
	return NewError(CodeNotFound, what+" not found", err)
}

func invalidInput(format string, args ...any) *Error {
	return NewError(CodeInvalidInput, fmt.Sprintf(format, args...), nil)
}
