package utils

import (
	"strings"

	"clinic-portal/internal/pkg/dto/requests"
)

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.Username = strings.TrimSpace(input.Username)
}

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Role = strings.ToUpper(strings.TrimSpace(input.Role))
}

func SanitizeBookAppointmentRequest(input *requests.BookAppointment) {
	input.DoctorID = strings.TrimSpace(input.DoctorID)
	input.AppointmentTime = strings.TrimSpace(input.AppointmentTime)
	input.Notes = strings.TrimSpace(input.Notes)
}

func SanitizeUpdatePatientProfileRequest(input *requests.UpdatePatientProfile) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.DateOfBirth = strings.TrimSpace(input.DateOfBirth)
	input.Gender = strings.ToUpper(strings.TrimSpace(input.Gender))
	input.ContactNumber = strings.TrimSpace(input.ContactNumber)
	input.Address = strings.TrimSpace(input.Address)
	input.BloodType = strings.TrimSpace(input.BloodType)
	input.InsuranceProvider = strings.TrimSpace(input.InsuranceProvider)
	input.InsurancePolicyNumber = strings.TrimSpace(input.InsurancePolicyNumber)
}

func SanitizeUpdateDoctorProfileRequest(input *requests.UpdateDoctorProfile) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Specialty = strings.TrimSpace(input.Specialty)
	input.ConsultationFee = strings.TrimSpace(input.ConsultationFee)
	input.Availability = strings.TrimSpace(input.Availability)
	input.LicenseNumber = strings.TrimSpace(input.LicenseNumber)
	input.Qualifications = strings.TrimSpace(input.Qualifications)
	input.YearsOfExperience = strings.TrimSpace(input.YearsOfExperience)
}

func SanitizeUpdateEmergencyContactRequest(input *requests.UpdateEmergencyContact) {
	input.Name = strings.TrimSpace(input.Name)
	input.Number = strings.TrimSpace(input.Number)
}
