package patients

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-portal/internal/app/models"
	"clinic-portal/internal/app/services/backend/httpclient"
	"clinic-portal/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *patientClient {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewPatientClient(server.URL, zap.NewNop(), httpclient.Options{}).(*patientClient)
}

func TestPatientClient(t *testing.T) {
	ctx := context.Background()

	t.Run("GetProfile", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/patients/me", r.URL.Path)
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			w.Write([]byte(`{"userId":4,"firstName":"Ann","lastName":"Lee","emergencyContactName":"Bob","emergencyContactNumber":"555"}`))
		})

		profile, err := client.GetProfile(ctx, "tok")
		require.NoError(t, err)
		assert.Equal(t, int64(4), profile.UserID)
		assert.Equal(t, "Ann", profile.FirstName)
	})

	t.Run("UpdateProfile Sends Body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			body, _ := io.ReadAll(r.Body)
			assert.Contains(t, string(body), `"firstName":"Anna"`)
			w.Write(body)
		})

		updated, err := client.UpdateProfile(ctx, "tok", &models.PatientProfile{UserID: 4, FirstName: "Anna"})
		require.NoError(t, err)
		assert.Equal(t, "Anna", updated.FirstName)
	})

	t.Run("AddMedicalHistory Uses Query Param", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/patients/me/medical-history", r.URL.Path)
			assert.Equal(t, "flu & fever", r.URL.Query().Get("description"))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":10,"description":"flu & fever","recordedAt":"2025-01-01"}`))
		})

		entry, err := client.AddMedicalHistory(ctx, "tok", "flu & fever")
		require.NoError(t, err)
		assert.Equal(t, int64(10), entry.ID)
	})

	t.Run("GetEmergencyContact Reads Patient Record", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/patients/me", r.URL.Path)
			w.Write([]byte(`{"emergencyContactName":"Bob","emergencyContactNumber":"555"}`))
		})

		contact, err := client.GetEmergencyContact(ctx, "tok")
		require.NoError(t, err)
		assert.Equal(t, models.EmergencyContact{Name: "Bob", Number: "555"}, *contact)
	})

	t.Run("UpdateEmergencyContact", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/patients/me/emergency-contact", r.URL.Path)
			assert.Equal(t, "Carl", r.URL.Query().Get("name"))
			assert.Equal(t, "777", r.URL.Query().Get("number"))
			w.Write([]byte(`{"emergencyContactName":"Carl","emergencyContactNumber":"777"}`))
		})

		contact, err := client.UpdateEmergencyContact(ctx, "tok", &requests.UpdateEmergencyContact{Name: "Carl", Number: "777"})
		require.NoError(t, err)
		assert.Equal(t, "Carl", contact.Name)
	})

	t.Run("ListPatients", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/patients/me/patients", r.URL.Path)
			w.Write([]byte(`[{"userId":1,"firstName":"A","medicalHistory":[{"id":1,"description":"x"}]}]`))
		})

		patients, err := client.ListPatients(ctx, "tok")
		require.NoError(t, err)
		require.Len(t, patients, 1)
		assert.Len(t, patients[0].MedicalHistory, 1)
	})
}
