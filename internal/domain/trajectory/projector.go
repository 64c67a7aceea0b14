package trajectory

import (
	"beneficiary-trajectory/internal/domain/activities"
	"beneficiary-trajectory/internal/domain/actors"
	"beneficiary-trajectory/internal/domain/attendance"
	"beneficiary-trajectory/internal/domain/notes"
)

const (
	entryPrefixAttendance = "attendance:"
	entryPrefixNote       = "note:"
)

var roleLabels = map[actors.Role]string{
	actors.RoleHealthProvider:    "Health provider",
	actors.RoleAffectiveReferent: "Affective referent",
	actors.RoleCommunityAgent:    "Community agent",
}

const defaultRoleLabel = "Professional"

// RoleLabel traduce el código de rol a la etiqueta que se muestra.
func RoleLabel(r actors.Role) string {
	if l, ok := roleLabels[r]; ok {
		return l
	}
	return defaultRoleLabel
}

// ResolvedAttendance es una asistencia con su actividad (obligatoria) y el nombre del espacio.
type ResolvedAttendance struct {
	Record    attendance.Record
	Activity  activities.Activity
	SpaceName string
}

// ResolvedNote es una nota con su autor resuelto o con el placeholder.
type ResolvedNote struct {
	Note       notes.Note
	AuthorName string
	AuthorRole actors.Role
}

// Projector convierte registros resueltos en Entry. Sin I/O.
type Projector struct {
	norm Normalizer
}

func NewProjector(norm Normalizer) Projector {
	return Projector{norm: norm}
}

func (p Projector) Attendance(r ResolvedAttendance) Entry {
	instant, ok := p.norm.Parse(r.Activity.ScheduledDate)

	return Entry{
		ID:           entryPrefixAttendance + r.Record.ID,
		Kind:         KindAttendance,
		Instant:      instant,
		DateUnparsed: !ok,
		Title:        r.Activity.Name,
		Description:  r.Activity.Description,
		Remark:       r.Record.Remark,
		Attendance: &AttendanceDetail{
			Status:      r.Record.Status,
			SpaceName:   r.SpaceName,
			Responsible: r.Activity.Responsible,
		},
	}
}

func (p Projector) Note(r ResolvedNote) Entry {
	instant, ok := p.norm.Parse(r.Note.Date)

	return Entry{
		ID:           entryPrefixNote + r.Note.ID,
		Kind:         KindNote,
		Instant:      instant,
		DateUnparsed: !ok,
		Title:        r.Note.Title,
		Description:  r.Note.Body,
		Remark:       r.Note.Body,
		Note: &NoteDetail{
			AuthorName: r.AuthorName,
			AuthorRole: RoleLabel(r.AuthorRole),
		},
	}
}
