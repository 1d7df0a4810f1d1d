// Package notify delivers workflow notifications by email through a bounded background queue.
package notify

import (
	"fmt"
	"strings"
	"time"

	"ats-backend/internal/workflow"
)

// SenderName is the display name on every outgoing email
const SenderName = "ATS System"

const signOff = "Best regards,\nATS Recruitment Team"

// Message is a plain text email
type Message struct {
	ToName  string
	To      string
	Subject string
	Body    string
}

// Compose renders the email for a notification
func Compose(n workflow.Notification) (Message, error) {
	msg := Message{ToName: n.Recipient.Name, To: n.Recipient.Email}

	var body []string
	switch n.Kind {
	case workflow.NotifyShortlisted:
		msg.Subject = fmt.Sprintf("Congratulations! You've been shortlisted for %s", n.JobTitle)
		body = []string{
			fmt.Sprintf("We are pleased to inform you that you have been shortlisted for the position of %s.", n.JobTitle),
			"Our team will contact you shortly with further details.",
		}
	case workflow.NotifyInterviewScheduled:
		msg.Subject = fmt.Sprintf("Interview Scheduled for %s", n.JobTitle)
		body = []string{
			fmt.Sprintf("Your interview for %s has been scheduled.", n.JobTitle),
			fmt.Sprintf("Date & Time: %s\nMode: %s", n.InterviewDate.UTC().Format(time.RFC1123), n.Mode),
			"Please be prepared and available at the scheduled time.",
		}
	case workflow.NotifyOfferExtended:
		msg.Subject = fmt.Sprintf("Job Offer - %s", n.JobTitle)
		body = []string{
			fmt.Sprintf("We are delighted to offer you the position of %s.", n.JobTitle),
			fmt.Sprintf("Salary: %.2f per annum\nJoining Date: %s", n.Salary, n.JoiningDate.UTC().Format("2006-01-02")),
			"Please log in to your account to accept or reject this offer.",
		}
	default:
		return Message{}, fmt.Errorf("unknown notification kind %q", n.Kind)
	}

	greeting := "Dear " + n.Recipient.Name + ","
	if n.Recipient.Name == "" {
		greeting = "Hello,"
	}
	parts := append([]string{greeting}, body...)
	parts = append(parts, signOff)
	msg.Body = strings.Join(parts, "\n\n") + "\n"
	return msg, nil
}
