package models

import "strconv"

type Appointment struct {
	ID              int64  `json:"id,omitempty"`
	PatientID       int64  `json:"patientId,omitempty"`
	DoctorID        int64  `json:"doctorId"`
	AppointmentTime string `json:"appointmentTime"`
	Status          string `json:"status,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

func (a Appointment) SearchFields() []string {
	return []string{
		strconv.FormatInt(a.ID, 10),
		strconv.FormatInt(a.DoctorID, 10),
		a.AppointmentTime,
		a.Status,
		a.Notes,
	}
}
