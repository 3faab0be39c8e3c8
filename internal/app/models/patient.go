package models

import "strconv"

type PatientProfile struct {
	UserID                 int64                 `json:"userId,omitempty"`
	FirstName              string                `json:"firstName"`
	LastName               string                `json:"lastName"`
	DateOfBirth            string                `json:"dateOfBirth,omitempty"`
	Gender                 string                `json:"gender,omitempty"`
	ContactNumber          string                `json:"contactNumber,omitempty"`
	Address                string                `json:"address,omitempty"`
	BloodType              string                `json:"bloodType,omitempty"`
	EmergencyContactName   string                `json:"emergencyContactName,omitempty"`
	EmergencyContactNumber string                `json:"emergencyContactNumber,omitempty"`
	InsuranceProvider      string                `json:"insuranceProvider,omitempty"`
	InsurancePolicyNumber  string                `json:"insurancePolicyNumber,omitempty"`
	MedicalHistory         []MedicalHistoryEntry `json:"medicalHistory,omitempty"`
}

func (p PatientProfile) SearchFields() []string {
	return []string{p.FirstName, p.LastName, strconv.FormatInt(p.UserID, 10)}
}

type MedicalHistoryEntry struct {
	ID          int64  `json:"id,omitempty"`
	Description string `json:"description"`
	RecordedAt  string `json:"recordedAt,omitempty"`
}

type EmergencyContact struct {
	Name   string `json:"emergencyContactName"`
	Number string `json:"emergencyContactNumber"`
}
