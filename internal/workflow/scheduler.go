package workflow

import (
	"time"

	"ats-backend/internal/model"
)

// ConflictWindow is the distance that must separate two scheduled interviews of one recruiter.
const ConflictWindow = time.Hour

// FindConflict returns the first Scheduled interview lying in the closed interval
// [when-window, when+window], if any.
func FindConflict(existing []model.InterviewSchedule, when time.Time, window time.Duration) (model.InterviewSchedule, bool) {
	for _, interview := range existing {
		if interview.Status != model.InterviewStatusScheduled {
			continue
		}
		diff := interview.InterviewDate.Sub(when)
		if diff < 0 {
			diff = -diff
		}
		if diff <= window {
			return interview, true
		}
	}
	return model.InterviewSchedule{}, false
}
