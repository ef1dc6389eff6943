package models

// Role identifies a medical specialist on the review panel.
type Role string

const (
	// RoleCardiologist reviews the cardiac workup.
	RoleCardiologist Role = "cardiologist"
	// RolePsychologist provides the psychological assessment.
	RolePsychologist Role = "psychologist"
	// RolePulmonologist provides the pulmonary assessment.
	RolePulmonologist Role = "pulmonologist"
)

// AllRoles returns every panel role in presentation order.
func AllRoles() []Role {
	return []Role{RoleCardiologist, RolePsychologist, RolePulmonologist}
}

// Valid returns true if the role is a known value.
func (r Role) Valid() bool {
	switch r {
	case RoleCardiologist, RolePsychologist, RolePulmonologist:
		return true
	default:
		return false
	}
}

// Title returns the display form of the role ("Cardiologist").
func (r Role) Title() string {
	switch r {
	case RoleCardiologist:
		return "Cardiologist"
	case RolePsychologist:
		return "Psychologist"
	case RolePulmonologist:
		return "Pulmonologist"
	default:
		return string(r)
	}
}
