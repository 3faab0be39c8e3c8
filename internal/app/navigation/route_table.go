package navigation

import (
	"clinic-portal/internal/app/models"
	"clinic-portal/internal/app/services/roles"
	"clinic-portal/internal/pkg/constvars"
)

// Decision is the outcome of checking a route for a session.
type Decision int

const (
	// Allow renders the route.
	Allow Decision = iota
	// Deny sends the visitor to the login page.
	Deny
	// Absent behaves as if the route did not exist.
	Absent
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Deny:
		return "deny"
	default:
		return "absent"
	}
}

type Access func(session *models.Session) Decision

type Route struct {
	Path   string
	Title  string
	InMenu bool
	Access Access
}

func Public(*models.Session) Decision {
	return Allow
}

// Authenticated allows any user whose role is known.
func Authenticated(session *models.Session) Decision {
	if roles.IsKnown(session) {
		return Allow
	}
	return Deny
}

func RequireRole(required models.Role) Access {
	return func(session *models.Session) Decision {
		if roles.CanAccess(string(required), session) {
			return Allow
		}
		return Deny
	}
}

// HiddenFrom makes the route absent for role and otherwise defers to access.
func HiddenFrom(role models.Role, access Access) Access {
	return func(session *models.Session) Decision {
		if roles.Resolve(session) == role {
			return Absent
		}
		return access(session)
	}
}

type Table struct {
	routes []Route
	index  map[string]int
}

func NewTable(routes ...Route) *Table {
	table := &Table{
		routes: routes,
		index:  make(map[string]int, len(routes)),
	}
	for i, route := range routes {
		table.index[route.Path] = i
	}
	return table
}

// DefaultTable is the portal's route table.
func DefaultTable() *Table {
	return NewTable(
		Route{Path: constvars.RouteRoot, Title: "Clinic Portal", Access: Public},
		Route{Path: constvars.RouteLogin, Title: "Login", Access: Public},
		Route{Path: constvars.RouteSignup, Title: "Sign Up", Access: Public},
		Route{Path: constvars.RouteHome, Title: "Home", InMenu: true, Access: Authenticated},
		Route{Path: constvars.RouteProfile, Title: "My Profile", InMenu: true, Access: Authenticated},
		Route{Path: constvars.RouteAppointments, Title: "My Appointments", InMenu: true, Access: Authenticated},
		Route{Path: constvars.RouteBookAppointment, Title: "Book Appointment", InMenu: true, Access: RequireRole(models.RolePatient)},
		Route{Path: constvars.RouteDoctors, Title: "Doctors Directory", InMenu: true, Access: Authenticated},
		Route{Path: constvars.RouteMedicalHistory, Title: "Medical History", InMenu: true, Access: HiddenFrom(models.RoleDoctor, RequireRole(models.RolePatient))},
		Route{Path: constvars.RouteEmergencyContact, Title: "Emergency Contact", InMenu: true, Access: HiddenFrom(models.RoleDoctor, RequireRole(models.RolePatient))},
		Route{Path: constvars.RoutePatients, Title: "Patient with medical history", InMenu: true, Access: RequireRole(models.RoleDoctor)},
	)
}

// Evaluate decides what happens when session requests path. Paths the table
// does not know are absent.
func (t *Table) Evaluate(path string, session *models.Session) Decision {
	i, ok := t.index[path]
	if !ok {
		return Absent
	}
	return t.routes[i].Access(session)
}

func (t *Table) Lookup(path string) (Route, bool) {
	i, ok := t.index[path]
	if !ok {
		return Route{}, false
	}
	return t.routes[i], true
}

// Registered lists the routes that exist for session, in table order.
func (t *Table) Registered(session *models.Session) []Route {
	var routes []Route
	for _, route := range t.routes {
		if route.Access(session) != Absent {
			routes = append(routes, route)
		}
	}
	return routes
}

// For lists the menu routes session may open.
func (t *Table) For(session *models.Session) []Route {
	var routes []Route
	for _, route := range t.routes {
		if route.InMenu && route.Access(session) == Allow {
			routes = append(routes, route)
		}
	}
	return routes
}
