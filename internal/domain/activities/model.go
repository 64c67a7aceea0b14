package activities

// Activity es una actividad programada en un espacio. Externa al motor: solo se consulta.
type Activity struct {
	ID          string
	Name        string
	Description string

	// ScheduledDate puede venir como fecha sola (YYYY-MM-DD) o con componente horario.
	ScheduledDate string

	SpaceID     string
	Responsible string
}

// Space es el lugar dueño de la actividad; solo interesa su nombre.
type Space struct {
	ID   string
	Name string
}
