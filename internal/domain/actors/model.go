package actors

// Role identifica el tipo de actor dentro de la red.
type Role string

const (
	RoleAdmin             Role = "admin"
	RoleInstitution       Role = "institution"
	RoleCommunityAgent    Role = "community_agent"
	RoleHealthProvider    Role = "health_provider"
	RoleAffectiveReferent Role = "affective_referent"
	RoleBeneficiary       Role = "beneficiary"
)

// Actor es un usuario del portal. Externo al motor: se consulta por nombre y rol.
type Actor struct {
	ID          string
	DisplayName string
	Role        Role
}

// CanAuthorNotes indica si el rol puede escribir observaciones sobre un beneficiario.
func (r Role) CanAuthorNotes() bool {
	switch r {
	case RoleHealthProvider, RoleAffectiveReferent, RoleCommunityAgent:
		return true
	default:
		return false
	}
}
