package requests

type UpdatePatientProfile struct {
	FirstName             string `form:"firstName" label:"First name" validate:"required"`
	LastName              string `form:"lastName" label:"Last name" validate:"required"`
	DateOfBirth           string `form:"dateOfBirth" label:"Date of birth"`
	Gender                string `form:"gender" label:"Gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	ContactNumber         string `form:"contactNumber" label:"Contact number"`
	Address               string `form:"address" label:"Address"`
	BloodType             string `form:"bloodType" label:"Blood type"`
	InsuranceProvider     string `form:"insuranceProvider" label:"Insurance provider"`
	InsurancePolicyNumber string `form:"insurancePolicyNumber" label:"Insurance policy number"`
}

type UpdateEmergencyContact struct {
	Name   string `json:"emergencyContactName" form:"emergencyContactName" label:"Emergency contact name" validate:"required"`
	Number string `json:"emergencyContactNumber" form:"emergencyContactNumber" label:"Emergency contact number" validate:"required"`
}

type AddMedicalHistory struct {
	Description string `form:"description" label:"Description" validate:"required,max=1000"`
}
