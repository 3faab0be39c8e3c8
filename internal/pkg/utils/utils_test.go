package utils

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"clinic-portal/internal/app/models"
	"clinic-portal/internal/pkg/dto/requests"
	"clinic-portal/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	t.Run("Empty Doctor Is Rejected With Label", func(t *testing.T) {
		err := ValidateStruct(&requests.BookAppointment{AppointmentTime: "2025-01-02T10:00"})
		require.Error(t, err)
		assert.Equal(t, "Doctor is required", exceptions.FormatFirstValidationError(err))
	})

	t.Run("Oneof Message Lists Options", func(t *testing.T) {
		err := ValidateStruct(&requests.RegisterUser{Username: "alice", Password: "secret1", Email: "a@b.test", Role: "ADMIN"})
		require.Error(t, err)
		assert.Equal(t, "Role must be one of [PATIENT, DOCTOR]", exceptions.FormatFirstValidationError(err))
	})

	t.Run("Fractional Experience Is Rejected", func(t *testing.T) {
		err := ValidateStruct(&requests.UpdateDoctorProfile{FirstName: "Greg", LastName: "House", YearsOfExperience: "2.5"})
		require.Error(t, err)
		assert.Equal(t, "Years of experience must be a whole number", exceptions.FormatFirstValidationError(err))
	})

	t.Run("Negative Fee Is Rejected", func(t *testing.T) {
		err := ValidateStruct(&requests.UpdateDoctorProfile{FirstName: "Greg", LastName: "House", ConsultationFee: "-10"})
		require.Error(t, err)
		assert.Equal(t, "Consultation fee must not be negative", exceptions.FormatFirstValidationError(err))
	})

	t.Run("Decimal Fee Is Accepted", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(&requests.UpdateDoctorProfile{FirstName: "Greg", LastName: "House", ConsultationFee: "99.90", YearsOfExperience: "0"}))
	})

	t.Run("Valid Booking", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(&requests.BookAppointment{DoctorID: "4", AppointmentTime: "2025-01-02T10:00"}))
	})
}

func TestBindForm(t *testing.T) {
	form := url.Values{}
	form.Set("doctorId", "12")
	form.Set("appointmentTime", "2025-01-02T10:00")
	form.Set("notes", "checkup")
	r := httptest.NewRequest(http.MethodPost, "/book-appointment", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var req requests.BookAppointment
	require.NoError(t, BindForm(r, &req))
	assert.Equal(t, requests.BookAppointment{DoctorID: "12", AppointmentTime: "2025-01-02T10:00", Notes: "checkup"}, req)
}

func TestSafeRedirectTarget(t *testing.T) {
	assert.Equal(t, "/profile", SafeRedirectTarget("/profile", "/login"))
	assert.Equal(t, "/login", SafeRedirectTarget("//evil.test", "/login"))
	assert.Equal(t, "/login", SafeRedirectTarget("https://evil.test", "/login"))
	assert.Equal(t, "/login", SafeRedirectTarget("", "/login"))
}

func TestTokenSubject(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "alice", "role": "PATIENT"}).SignedString([]byte("other-service-secret"))
	require.NoError(t, err)

	assert.Equal(t, "alice", TokenSubject(token))
	assert.Equal(t, "", TokenSubject("not-a-jwt"))
	assert.Equal(t, "", TokenSubject(""))
}

func TestMatchesQuery(t *testing.T) {
	assert.True(t, MatchesQuery("", "anything"))
	assert.True(t, MatchesQuery("card", "Cardiology", "Jane"))
	assert.True(t, MatchesQuery("  JANE ", "Cardiology", "jane"))
	assert.False(t, MatchesQuery("derm", "Cardiology", "Jane"))
}

func TestMergePatientProfile(t *testing.T) {
	current := models.PatientProfile{
		UserID:               7,
		FirstName:            "Ann",
		EmergencyContactName: "Bob",
		MedicalHistory:       []models.MedicalHistoryEntry{{ID: 1, Description: "asthma"}},
	}
	merged := MergePatientProfile(current, &requests.UpdatePatientProfile{FirstName: "Anna", LastName: "Lee"})

	assert.Equal(t, int64(7), merged.UserID)
	assert.Equal(t, "Anna", merged.FirstName)
	assert.Equal(t, "Bob", merged.EmergencyContactName)
	assert.Nil(t, merged.MedicalHistory)
	assert.Equal(t, "Ann", current.FirstName)
}

func TestMergeDoctorProfile(t *testing.T) {
	t.Run("Parses Numbers", func(t *testing.T) {
		merged, err := MergeDoctorProfile(models.Doctor{UserID: 3}, &requests.UpdateDoctorProfile{
			FirstName:         "Greg",
			LastName:          "House",
			ConsultationFee:   "150.5",
			YearsOfExperience: "20",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3), merged.UserID)
		assert.Equal(t, 150.5, merged.ConsultationFee)
		assert.Equal(t, 20, merged.YearsOfExperience)
	})

	t.Run("Unparseable Experience Keeps Current", func(t *testing.T) {
		current := models.Doctor{UserID: 3, YearsOfExperience: 7}
		merged, err := MergeDoctorProfile(current, &requests.UpdateDoctorProfile{FirstName: "Greg", LastName: "House", YearsOfExperience: "2.5"})
		require.Error(t, err)
		assert.Equal(t, current, merged)
	})
}

func TestBuildCreateAppointmentRequest(t *testing.T) {
	body, err := BuildCreateAppointmentRequest(&requests.BookAppointment{DoctorID: "9", AppointmentTime: "2025-01-02T10:00"})
	require.NoError(t, err)
	assert.Equal(t, int64(9), body.DoctorID)

	_, err = BuildCreateAppointmentRequest(&requests.BookAppointment{DoctorID: "x"})
	assert.Error(t, err)
}
