package utils

import (
	"fmt"
	"strconv"

	"clinic-portal/internal/app/models"
	"clinic-portal/internal/pkg/dto/requests"
)

// MergePatientProfile applies the editable fields of the form on top of the
// current profile. Fields the form does not carry are preserved.
func MergePatientProfile(current models.PatientProfile, req *requests.UpdatePatientProfile) models.PatientProfile {
	merged := current
	merged.FirstName = req.FirstName
	merged.LastName = req.LastName
	merged.DateOfBirth = req.DateOfBirth
	merged.Gender = req.Gender
	merged.ContactNumber = req.ContactNumber
	merged.Address = req.Address
	merged.BloodType = req.BloodType
	merged.InsuranceProvider = req.InsuranceProvider
	merged.InsurancePolicyNumber = req.InsurancePolicyNumber
	merged.MedicalHistory = nil
	return merged
}

// MergeDoctorProfile expects a request that already passed validation. An
// empty fee or experience clears the field; anything unparseable is an error.
func MergeDoctorProfile(current models.Doctor, req *requests.UpdateDoctorProfile) (models.Doctor, error) {
	merged := current
	merged.FirstName = req.FirstName
	merged.LastName = req.LastName
	merged.Specialty = req.Specialty
	merged.Availability = req.Availability
	merged.LicenseNumber = req.LicenseNumber
	merged.Qualifications = req.Qualifications
	merged.ConsultationFee = 0
	if req.ConsultationFee != "" {
		fee, err := strconv.ParseFloat(req.ConsultationFee, 64)
		if err != nil {
			return current, fmt.Errorf("consultation fee %q: %w", req.ConsultationFee, err)
		}
		merged.ConsultationFee = fee
	}
	merged.YearsOfExperience = 0
	if req.YearsOfExperience != "" {
		years, err := strconv.Atoi(req.YearsOfExperience)
		if err != nil {
			return current, fmt.Errorf("years of experience %q: %w", req.YearsOfExperience, err)
		}
		merged.YearsOfExperience = years
	}
	return merged, nil
}

func BuildCreateAppointmentRequest(req *requests.BookAppointment) (*requests.CreateAppointment, error) {
	doctorID, err := strconv.ParseInt(req.DoctorID, 10, 64)
	if err != nil {
		return nil, err
	}
	return &requests.CreateAppointment{
		DoctorID:        doctorID,
		AppointmentTime: req.AppointmentTime,
		Notes:           req.Notes,
	}, nil
}

func BuildUpdateEmergencyContactRequest(contact models.EmergencyContact) *requests.UpdateEmergencyContact {
	return &requests.UpdateEmergencyContact{Name: contact.Name, Number: contact.Number}
}
