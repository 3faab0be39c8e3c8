package routers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"clinic-portal/internal/app/config"
	"clinic-portal/internal/app/contracts"
	"clinic-portal/internal/app/contracts/mocks"
	"clinic-portal/internal/app/delivery/http/controllers"
	"clinic-portal/internal/app/delivery/http/middlewares"
	"clinic-portal/internal/app/models"
	"clinic-portal/internal/app/navigation"
	"clinic-portal/internal/app/pages"
	"clinic-portal/internal/app/services/auth"
	"clinic-portal/internal/app/services/session"
	"clinic-portal/internal/app/services/shared/events"
	"clinic-portal/internal/app/services/shared/locker"
	redisRepository "clinic-portal/internal/app/services/shared/redis"
	"clinic-portal/internal/app/views"
	"clinic-portal/internal/pkg/constvars"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	patientSID = "0b8a5f4e-7c1d-4e55-9a0e-6f2b1c3d4e5f"
	doctorSID  = "1c9b6a5f-8d2e-4f66-8b1f-7a3c2d4e5f60"
)

type portal struct {
	handler      http.Handler
	redis        *miniredis.Miniredis
	sessions     contracts.SessionStore
	authClient   *mocks.MockAuthClient
	patients     *mocks.MockPatientClient
	doctors      *mocks.MockDoctorClient
	appointments *mocks.MockAppointmentClient
}

func newPortal(t *testing.T) *portal {
	t.Helper()
	log := zap.NewNop()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	repo := redisRepository.NewRedisRepository(client)
	sessionStore := session.NewSessionStore(repo, 12*time.Hour, log)
	publisher, err := events.NewEventPublisher(nil, "", log)
	require.NoError(t, err)

	p := &portal{
		redis:        mr,
		sessions:     sessionStore,
		authClient:   new(mocks.MockAuthClient),
		patients:     new(mocks.MockPatientClient),
		doctors:      new(mocks.MockDoctorClient),
		appointments: new(mocks.MockAppointmentClient),
	}

	internalConfig := &config.InternalConfig{
		App: config.App{
			AllowedOrigins:            []string{"*"},
			MaxRequests:               1000,
			LoginMaxRequestsPerMinute: 100,
			Timezone:                  "UTC",
		},
		Session: config.Session{CookieName: "clinic_session", TTLInHours: 12},
	}

	table := navigation.DefaultTable()
	renderer, err := views.NewRenderer(table, log)
	require.NoError(t, err)
	mw := middlewares.NewMiddlewares(log, internalConfig, sessionStore, table, renderer)

	deps := pages.Deps{
		Patients:     p.patients,
		Doctors:      p.doctors,
		Appointments: p.appointments,
		Events:       publisher,
		Log:          log,
	}
	support := controllers.NewPageSupport(log, renderer, pages.NewRegistry(log),
		pages.NewSaveLock(locker.NewLockService(repo, log), 30*time.Second, log), deps, mw)
	authUsecase := auth.NewAuthUsecase(p.authClient, p.patients, p.doctors, sessionStore, publisher, log)

	router := chi.NewRouter()
	SetupRoutes(router, internalConfig, nil, mw,
		controllers.NewShellController(support, client),
		controllers.NewAuthController(support, authUsecase),
		controllers.NewProfileController(support),
		controllers.NewAppointmentController(support),
		controllers.NewDoctorController(support),
		controllers.NewPatientController(support),
	)
	p.handler = router
	return p
}

func (p *portal) signIn(t *testing.T, sid, role string) {
	t.Helper()
	err := p.sessions.Save(context.Background(), sid, "tok-"+role, models.User{UserID: 1, FirstName: "Test", Role: role})
	require.NoError(t, err)
}

func (p *portal) do(method, path, sid string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "clinic_session", Value: sid})
	}
	rr := httptest.NewRecorder()
	p.handler.ServeHTTP(rr, req)
	return rr
}

func sessionCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == "clinic_session" {
			return cookie
		}
	}
	return nil
}

func TestRootAndUnknownPaths(t *testing.T) {
	p := newPortal(t)

	t.Run("Visitor Is Sent To Login With A Cookie", func(t *testing.T) {
		rr := p.do(http.MethodGet, "/", "", nil)
		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, constvars.RouteLogin, rr.Header().Get(constvars.HeaderLocation))
		require.NotNil(t, sessionCookie(rr))
	})

	t.Run("Unknown Path Is Not Found", func(t *testing.T) {
		rr := p.do(http.MethodGet, "/no-such-page", "", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "Page not found")
	})

	t.Run("Health", func(t *testing.T) {
		rr := p.do(http.MethodGet, constvars.RouteHealth, "", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Nil(t, sessionCookie(rr))
	})
}

func TestPatientLoginShowsPatientHome(t *testing.T) {
	p := newPortal(t)
	p.authClient.On("Login", mock.Anything, "alice", "secret").Return("tok", nil)
	p.patients.On("GetProfile", mock.Anything, "tok").Return(&models.PatientProfile{UserID: 42, FirstName: "Alice"}, nil)

	rr := p.do(http.MethodPost, constvars.RouteLogin, patientSID, url.Values{"username": {"alice"}, "password": {"secret"}})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, constvars.RouteHome, rr.Header().Get(constvars.HeaderLocation))

	cookie := sessionCookie(rr)
	require.NotNil(t, cookie)
	assert.NotEqual(t, patientSID, cookie.Value)

	home := p.do(http.MethodGet, constvars.RouteHome, cookie.Value, nil)
	require.Equal(t, http.StatusOK, home.Code)
	body := home.Body.String()
	for _, feature := range pages.HomeFeatures(models.RolePatient) {
		assert.Contains(t, body, feature.Description)
	}
	assert.NotContains(t, body, "Patient with medical history")
}

func TestLoginAgainClearsPreviousSession(t *testing.T) {
	p := newPortal(t)
	p.signIn(t, patientSID, "PATIENT")
	p.authClient.On("Login", mock.Anything, "alice", "secret").Return("tok", nil)
	p.patients.On("GetProfile", mock.Anything, "tok").Return(&models.PatientProfile{UserID: 42, FirstName: "Alice"}, nil)

	rr := p.do(http.MethodPost, constvars.RouteLogin, patientSID, url.Values{"username": {"alice"}, "password": {"secret"}})
	require.Equal(t, http.StatusSeeOther, rr.Code)

	cookie := sessionCookie(rr)
	require.NotNil(t, cookie)
	assert.Nil(t, p.sessions.Load(context.Background(), patientSID))
	assert.NotNil(t, p.sessions.Load(context.Background(), cookie.Value))
}

func TestLoginFailureStaysOnLoginPage(t *testing.T) {
	p := newPortal(t)
	p.authClient.On("Login", mock.Anything, "alice", "wrong").Return("", assert.AnError)

	rr := p.do(http.MethodPost, constvars.RouteLogin, patientSID, url.Values{"username": {"alice"}, "password": {"wrong"}})
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), constvars.MsgLoginFailed)
	assert.Contains(t, rr.Body.String(), `value="alice"`)
}

func TestRoleGates(t *testing.T) {
	p := newPortal(t)
	p.signIn(t, doctorSID, "DOCTOR")
	p.signIn(t, patientSID, "patient")

	t.Run("Doctor Has No Medical History Page", func(t *testing.T) {
		rr := p.do(http.MethodGet, constvars.RouteMedicalHistory, doctorSID, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		p.patients.AssertNotCalled(t, "GetMedicalHistory", mock.Anything, mock.Anything)
	})

	t.Run("Doctor Has No Emergency Contact Page", func(t *testing.T) {
		rr := p.do(http.MethodGet, constvars.RouteEmergencyContact, doctorSID, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Patient Is Denied The Patient List", func(t *testing.T) {
		rr := p.do(http.MethodGet, constvars.RoutePatients, patientSID, nil)
		assert.Equal(t, http.StatusSeeOther, rr.Code)
	})

	t.Run("Visitor Is Denied Profile", func(t *testing.T) {
		rr := p.do(http.MethodGet, constvars.RouteProfile, "", nil)
		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.True(t, strings.HasPrefix(rr.Header().Get(constvars.HeaderLocation), constvars.RouteLogin))
	})
}

func TestLogoutClearsSession(t *testing.T) {
	p := newPortal(t)
	p.signIn(t, patientSID, "PATIENT")

	rr := p.do(http.MethodPost, constvars.RouteLogout, patientSID, url.Values{})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, constvars.RouteLogin, rr.Header().Get(constvars.HeaderLocation))
	cookie := sessionCookie(rr)
	require.NotNil(t, cookie)
	assert.True(t, cookie.MaxAge < 0)

	assert.Nil(t, p.sessions.Load(context.Background(), patientSID))
	home := p.do(http.MethodGet, constvars.RouteHome, patientSID, nil)
	assert.Equal(t, http.StatusSeeOther, home.Code)
}

func TestProfileEditCancelMakesNoWrites(t *testing.T) {
	p := newPortal(t)
	p.signIn(t, patientSID, "PATIENT")
	p.patients.On("GetProfile", mock.Anything, "tok-PATIENT").Return(&models.PatientProfile{FirstName: "Ann", LastName: "Lee"}, nil)

	require.Equal(t, http.StatusOK, p.do(http.MethodGet, constvars.RouteProfile, patientSID, nil).Code)

	edit := p.do(http.MethodPost, "/profile/edit", patientSID, url.Values{})
	require.Equal(t, http.StatusOK, edit.Code)
	assert.Contains(t, edit.Body.String(), `action="/profile/save"`)

	cancel := p.do(http.MethodPost, "/profile/cancel", patientSID, url.Values{})
	require.Equal(t, http.StatusOK, cancel.Code)
	assert.NotContains(t, cancel.Body.String(), `action="/profile/save"`)
	assert.Contains(t, cancel.Body.String(), "Ann Lee")

	p.patients.AssertNumberOfCalls(t, "GetProfile", 1)
	p.patients.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestConcurrentSaveIsRejected(t *testing.T) {
	p := newPortal(t)
	p.signIn(t, patientSID, "PATIENT")
	p.patients.On("GetMedicalHistory", mock.Anything, "tok-PATIENT").Return([]models.MedicalHistoryEntry{}, nil)

	require.NoError(t, p.redis.Set(pages.SaveLockKey(patientSID, constvars.PageMedicalHistory), "held"))

	rr := p.do(http.MethodPost, "/medical-history/add", patientSID, url.Values{"description": {"Asthma"}})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), constvars.MsgAddMedicalHistoryFailed)
	p.patients.AssertNotCalled(t, "AddMedicalHistory", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingWithoutDoctorMakesNoCall(t *testing.T) {
	p := newPortal(t)
	p.signIn(t, patientSID, "PATIENT")
	p.doctors.On("ListDoctors", mock.Anything, "tok-PATIENT").Return([]models.Doctor{{UserID: 7, FirstName: "Greg"}}, nil)

	rr := p.do(http.MethodPost, constvars.RouteBookAppointment, patientSID, url.Values{"appointmentTime": {"2999-01-01T10:00"}})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Doctor is required")
	p.appointments.AssertNotCalled(t, "BookAppointment", mock.Anything, mock.Anything, mock.Anything)
}

func TestAppointmentsFilterUsesMountedPage(t *testing.T) {
	p := newPortal(t)
	p.signIn(t, patientSID, "PATIENT")
	p.appointments.On("ListMyAppointments", mock.Anything, "tok-PATIENT").Return([]models.Appointment{
		{ID: 1, Status: "SCHEDULED", Notes: "Checkup"},
		{ID: 2, Status: "CANCELLED", Notes: "Dentist"},
	}, nil)

	require.Equal(t, http.StatusOK, p.do(http.MethodGet, constvars.RouteAppointments, patientSID, nil).Code)
	rr := p.do(http.MethodGet, constvars.RouteAppointments+"?q=dent", patientSID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Dentist")
	assert.NotContains(t, rr.Body.String(), "Checkup")
	p.appointments.AssertNumberOfCalls(t, "ListMyAppointments", 1)
}
