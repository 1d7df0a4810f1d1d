package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ats-backend/internal/model"
)

func TestFindConflict(t *testing.T) {
	base := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	existing := []model.InterviewSchedule{
		{ID: 1, InterviewDate: base, Status: model.InterviewStatusScheduled},
		{ID: 2, InterviewDate: base.Add(5 * time.Hour), Status: model.InterviewStatusCancelled},
	}

	conflict, ok := FindConflict(existing, base.Add(30*time.Minute), ConflictWindow)
	assert.True(t, ok)
	assert.Equal(t, uint(1), conflict.ID)

	_, ok = FindConflict(existing, base.Add(-time.Hour), ConflictWindow)
	assert.True(t, ok, "window is a closed interval")

	_, ok = FindConflict(existing, base.Add(61*time.Minute), ConflictWindow)
	assert.False(t, ok)

	_, ok = FindConflict(existing, base.Add(5*time.Hour), ConflictWindow)
	assert.False(t, ok, "cancelled interviews do not block")
}

func TestFindConflict_ComparesInstants(t *testing.T) {
	base := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	bangkok := time.FixedZone("ICT", 7*60*60)
	existing := []model.InterviewSchedule{{InterviewDate: base, Status: model.InterviewStatusScheduled}}

	_, ok := FindConflict(existing, time.Date(2026, 3, 2, 17, 20, 0, 0, bangkok), ConflictWindow)
	assert.True(t, ok)
}
