package attendance

// Status es el resultado de asistencia de un beneficiario a una actividad.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
)

// Record registra la participación de un beneficiario en una ocurrencia de actividad.
// Lo crea el flujo de gestión de actividades; el motor de trayectoria solo lo lee.
type Record struct {
	ID            string
	ActivityID    string
	BeneficiaryID string

	Status Status
	Remark string
}
