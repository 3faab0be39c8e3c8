package requests

// BookAppointment is the booking form. DoctorID stays a string so an empty
// selection can be told apart from a real id.
type BookAppointment struct {
	DoctorID        string `form:"doctorId" label:"Doctor" validate:"required,numeric"`
	AppointmentTime string `form:"appointmentTime" label:"Appointment time" validate:"required"`
	Notes           string `form:"notes" label:"Notes" validate:"max=500"`
}

// CreateAppointment is the body sent to the appointment service.
type CreateAppointment struct {
	DoctorID        int64  `json:"doctorId"`
	AppointmentTime string `json:"appointmentTime"`
	Notes           string `json:"notes"`
}
