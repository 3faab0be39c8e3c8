package appointments

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-portal/internal/app/services/backend/httpclient"
	"clinic-portal/internal/pkg/dto/requests"
	"clinic-portal/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAppointmentClient(t *testing.T) {
	ctx := context.Background()

	t.Run("BookAppointment Sends Numeric Doctor Id", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/appointments", r.URL.Path)
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"doctorId":3,"appointmentTime":"2025-03-01T09:30","notes":"checkup"}`, string(body))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":77,"doctorId":3,"appointmentTime":"2025-03-01T09:30","status":"SCHEDULED"}`))
		}))
		defer server.Close()

		appointment, err := NewAppointmentClient(server.URL, zap.NewNop(), httpclient.Options{}).BookAppointment(ctx, "tok", &requests.CreateAppointment{
			DoctorID:        3,
			AppointmentTime: "2025-03-01T09:30",
			Notes:           "checkup",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(77), appointment.ID)
	})

	t.Run("BookAppointment Rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message":"Doctor not available"}`))
		}))
		defer server.Close()

		_, err := NewAppointmentClient(server.URL, zap.NewNop(), httpclient.Options{}).BookAppointment(ctx, "tok", &requests.CreateAppointment{DoctorID: 3})
		assert.Equal(t, "Doctor not available", exceptions.ClientMessageOr(err, "Failed to book appointment"))
	})

	t.Run("ListMyAppointments", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/appointments/me", r.URL.Path)
			w.Write([]byte(`[{"id":1,"doctorId":3,"appointmentTime":"2025-03-01T09:30","status":"SCHEDULED"}]`))
		}))
		defer server.Close()

		appointments, err := NewAppointmentClient(server.URL, zap.NewNop(), httpclient.Options{}).ListMyAppointments(ctx, "tok")
		require.NoError(t, err)
		assert.Len(t, appointments, 1)
	})
}
