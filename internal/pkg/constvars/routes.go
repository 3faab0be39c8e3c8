package constvars

const (
	RouteRoot             = "/"
	RouteLogin            = "/login"
	RouteSignup           = "/signup"
	RouteLogout           = "/logout"
	RouteTheme            = "/theme"
	RouteHome             = "/home"
	RouteProfile          = "/profile"
	RouteAppointments     = "/appointments"
	RouteBookAppointment  = "/book-appointment"
	RouteDoctors          = "/doctors"
	RouteMedicalHistory   = "/medical-history"
	RouteEmergencyContact = "/emergency-contact"
	RoutePatients         = "/getallpatients"
	RouteHealth           = "/healthz"
)

// Backend service paths.
const (
	PathAuthLogin              = "/api/auth/login"
	PathAuthRegister           = "/api/auth/register"
	PathPatientsMe             = "/api/patients/me"
	PathPatientsMedicalHistory = "/api/patients/me/medical-history"
	PathPatientsEmergency      = "/api/patients/me/emergency-contact"
	PathPatientsAll            = "/api/patients/me/patients"
	PathDoctorsMe              = "/api/doctors/me"
	PathDoctors                = "/api/doctors"
	PathDoctorsSpecialty       = "/api/doctors/specialty/"
	PathAppointmentsMe         = "/api/appointments/me"
	PathAppointments           = "/api/appointments"
)

const (
	ServiceAuth        = "auth"
	ServicePatient     = "patient"
	ServiceDoctor      = "doctor"
	ServiceAppointment = "appointment"
)
