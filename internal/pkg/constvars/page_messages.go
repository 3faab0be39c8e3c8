package constvars

// Messages shown by the portal pages.
const (
	MsgLoginFailed              = "Login failed"
	MsgRegistrationFailed       = "Registration failed"
	MsgRegistrationSucceeded    = "Registration successful! Please log in."
	MsgFetchUserProfileFailed   = "Failed to fetch user profile."
	MsgLoadProfileFailed        = "Failed to load profile"
	MsgProfileUpdated           = "Profile updated successfully!"
	MsgPatientProfileUpdateFail = "Failed to update profile"
	MsgDoctorProfileUpdateFail  = "Failed to update profile."
	MsgLoadAppointmentsFailed   = "Failed to load appointments"
	MsgNoAppointments           = "No appointments found."
	MsgNoMatchingAppointments   = "No appointments match your search."
	MsgAppointmentBooked        = "Appointment booked successfully!"
	MsgBookAppointmentFailed    = "Failed to book appointment"
	MsgAppointmentInPast        = "Please select a future date and time."
	MsgLoadDoctorsFailed        = "Failed to load doctors"
	MsgNoDoctors                = "No doctors found."
	MsgLoadPatientsFailed       = "Failed to load patients"
	MsgNoPatients               = "No patients found."
	MsgLoadMedicalHistoryFailed = "No medical history available. Kindly add your medical history."
	MsgNoMedicalHistory         = "No medical history found."
	MsgMedicalHistoryAdded      = "Entry added!"
	MsgAddMedicalHistoryFailed  = "Failed to add entry"
	MsgLoadEmergencyFailed      = "Failed to load emergency contact"
	MsgEmergencyUpdated         = "Emergency contact updated!"
	MsgEmergencyUpdateFailed    = "Failed to update emergency contact"
)

const (
	PageLogin            = "login"
	PageSignup           = "signup"
	PageHome             = "home"
	PageProfile          = "profile"
	PageDoctorProfile    = "doctor-profile"
	PageAppointments     = "appointments"
	PageBookAppointment  = "book-appointment"
	PageDoctors          = "doctors"
	PageMedicalHistory   = "medical-history"
	PageEmergencyContact = "emergency-contact"
	PagePatients         = "patients"
	PageNotFound         = "not-found"
	PageError            = "error"
)
