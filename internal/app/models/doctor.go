package models

type Doctor struct {
	UserID            int64   `json:"userId,omitempty"`
	FirstName         string  `json:"firstName"`
	LastName          string  `json:"lastName"`
	Specialty         string  `json:"specialty,omitempty"`
	ConsultationFee   float64 `json:"consultationFee,omitempty"`
	Availability      string  `json:"availability,omitempty"`
	LicenseNumber     string  `json:"licenseNumber,omitempty"`
	Qualifications    string  `json:"qualifications,omitempty"`
	YearsOfExperience int     `json:"yearsOfExperience,omitempty"`
}

func (d Doctor) SearchFields() []string {
	return []string{d.Specialty, d.FirstName, d.LastName}
}
