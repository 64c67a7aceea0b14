package trajectory

import (
	"time"

	"beneficiary-trajectory/internal/domain/attendance"
)

// Kind discrimina las variantes de Entry. Los consumidores hacen switch sobre Kind,
// nunca sobre qué detalle viene cargado.
type Kind string

const (
	KindAttendance Kind = "attendance"
	KindNote       Kind = "note"
)

const (
	SpaceNotFoundLabel  = "space not found"
	AuthorNotFoundLabel = "professional not found"
)

// Entry es un ítem de la trayectoria ya resuelto y listo para mostrar.
// Se construye una sola vez; una nota nueva regenera todo el conjunto.
type Entry struct {
	ID   string
	Kind Kind

	Instant time.Time
	// DateUnparsed marca entradas cuya fecha de origen no se pudo interpretar;
	// quedan con Instant cero y se ordenan al final.
	DateUnparsed bool

	Title       string
	Description string
	Remark      string

	Attendance *AttendanceDetail // solo KindAttendance
	Note       *NoteDetail       // solo KindNote
}

type AttendanceDetail struct {
	Status      attendance.Status
	SpaceName   string
	Responsible string
}

type NoteDetail struct {
	AuthorName string
	AuthorRole string
}
