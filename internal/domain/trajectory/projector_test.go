package trajectory

import (
	"testing"
	"time"

	"beneficiary-trajectory/internal/domain/activities"
	"beneficiary-trajectory/internal/domain/actors"
	"beneficiary-trajectory/internal/domain/attendance"
	"beneficiary-trajectory/internal/domain/notes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleLabel(t *testing.T) {
	assert.Equal(t, "Health provider", RoleLabel(actors.RoleHealthProvider))
	assert.Equal(t, "Affective referent", RoleLabel(actors.RoleAffectiveReferent))
	assert.Equal(t, "Community agent", RoleLabel(actors.RoleCommunityAgent))
	assert.Equal(t, "Professional", RoleLabel(actors.RoleInstitution))
	assert.Equal(t, "Professional", RoleLabel(""))
}

func TestProjector_Attendance(t *testing.T) {
	p := NewProjector(NewNormalizer(testLoc))

	e := p.Attendance(ResolvedAttendance{
		Record: attendance.Record{ID: "at-1", Status: attendance.StatusAbsent, Remark: "sick"},
		Activity: activities.Activity{
			Name:          "Workshop",
			Description:   "Weekly workshop",
			ScheduledDate: "2025-10-15T09:00:00",
			Responsible:   "Laura Diaz",
		},
		SpaceName: "Center A",
	})

	assert.Equal(t, "attendance:at-1", e.ID)
	assert.Equal(t, KindAttendance, e.Kind)
	assert.True(t, time.Date(2025, 10, 15, 12, 0, 0, 0, testLoc).Equal(e.Instant))
	assert.False(t, e.DateUnparsed)
	assert.Equal(t, "Workshop", e.Title)
	assert.Equal(t, "Weekly workshop", e.Description)
	assert.Equal(t, "sick", e.Remark)
	assert.Nil(t, e.Note)
	require.NotNil(t, e.Attendance)
	assert.Equal(t, attendance.StatusAbsent, e.Attendance.Status)
	assert.Equal(t, "Center A", e.Attendance.SpaceName)
	assert.Equal(t, "Laura Diaz", e.Attendance.Responsible)
}

func TestProjector_Note(t *testing.T) {
	p := NewProjector(NewNormalizer(testLoc))

	e := p.Note(ResolvedNote{
		Note:       notes.Note{ID: "n-1", Title: "Follow-up", Body: "Stable", Date: "not a date"},
		AuthorName: "Ana",
		AuthorRole: actors.RoleAffectiveReferent,
	})

	assert.Equal(t, "note:n-1", e.ID)
	assert.Equal(t, KindNote, e.Kind)
	assert.True(t, e.DateUnparsed)
	assert.True(t, e.Instant.IsZero())
	assert.Equal(t, "Stable", e.Description)
	assert.Equal(t, "Stable", e.Remark)
	assert.Nil(t, e.Attendance)
	require.NotNil(t, e.Note)
	assert.Equal(t, "Ana", e.Note.AuthorName)
	assert.Equal(t, "Affective referent", e.Note.AuthorRole)
}
