package roles

import (
	"strings"

	"clinic-portal/internal/app/models"
)

// Normalize maps a raw role string onto a known role. Anything that is not
// PATIENT or DOCTOR after uppercasing is UNKNOWN.
func Normalize(raw string) models.Role {
	switch models.Role(strings.ToUpper(raw)) {
	case models.RolePatient:
		return models.RolePatient
	case models.RoleDoctor:
		return models.RoleDoctor
	default:
		return models.RoleUnknown
	}
}

// Resolve derives the role of whoever owns session.
func Resolve(session *models.Session) models.Role {
	if session == nil {
		return models.RoleUnknown
	}
	return Normalize(session.User.Role)
}

// CanAccess reports whether session belongs to a user holding required.
// UNKNOWN never grants access, even when required is UNKNOWN.
func CanAccess(required string, session *models.Session) bool {
	want := Normalize(required)
	if want == models.RoleUnknown {
		return false
	}
	return Resolve(session) == want
}

// IsKnown reports whether session belongs to a patient or a doctor.
func IsKnown(session *models.Session) bool {
	return Resolve(session) != models.RoleUnknown
}
