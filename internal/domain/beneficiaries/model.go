package beneficiaries

import "time"

// Beneficiary es la persona cuya trayectoria se arma (USMYA en el dominio de origen).
type Beneficiary struct {
	ID string

	FullName       string
	DocumentNumber string
	BirthDate      *time.Time

	// InstitutionID es la institución que deriva o acompaña al beneficiario (opcional).
	InstitutionID string

	CreatedAt time.Time
}
