package workflow

import (
	"context"
	"time"

	"ats-backend/internal/model"
)

// NotificationKind names the workflow event a notification reports.
type NotificationKind string

// Notification kinds
const (
	NotifyShortlisted        NotificationKind = "shortlisted"
	NotifyInterviewScheduled NotificationKind = "interview_scheduled"
	NotifyOfferExtended      NotificationKind = "offer_extended"
)

// Recipient is who a notification is addressed to.
type Recipient struct {
	Name  string
	Email string
}

// Notification is the payload handed to the dispatcher after a workflow operation commits.
type Notification struct {
	Kind          NotificationKind
	Recipient     Recipient
	JobTitle      string
	InterviewDate time.Time
	Mode          model.InterviewMode
	Salary        float64
	JoiningDate   time.Time
}

// Notifier dispatches notifications. It is best effort: it must not block for long
// and reports no error, failures are the implementation's to log.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// NopNotifier drops every notification.
type NopNotifier struct{}

// Notify does nothing
func (NopNotifier) Notify(context.Context, Notification) {}
