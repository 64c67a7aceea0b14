package notes

import "time"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Note es una observación en texto libre escrita por personal de cuidado sobre un beneficiario,
// independiente de cualquier actividad. Inmutable una vez creada.
type Note struct {
	ID            string
	AuthorID      string
	BeneficiaryID string

	Title string
	Body  string

	// Date (YYYY-MM-DD) y Time (HH:MM) se guardan como texto, igual que llegan de la fuente.
	Date string
	Time string

	CreatedAt time.Time
}
