package requests

type UpdateDoctorProfile struct {
	FirstName         string `form:"firstName" label:"First name" validate:"required"`
	LastName          string `form:"lastName" label:"Last name" validate:"required"`
	Specialty         string `form:"specialty" label:"Specialty"`
	ConsultationFee   string `form:"consultationFee" label:"Consultation fee" validate:"omitempty,numeric,nonnegative"`
	Availability      string `form:"availability" label:"Availability"`
	LicenseNumber     string `form:"licenseNumber" label:"License number"`
	Qualifications    string `form:"qualifications" label:"Qualifications"`
	YearsOfExperience string `form:"yearsOfExperience" label:"Years of experience" validate:"omitempty,number"`
}
