package models

// Role is the normalized role of a signed-in user.
type Role string

const (
	RolePatient Role = "PATIENT"
	RoleDoctor  Role = "DOCTOR"
	RoleUnknown Role = "UNKNOWN"
)

func (r Role) String() string {
	return string(r)
}
