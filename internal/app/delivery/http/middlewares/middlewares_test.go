package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-portal/internal/app/config"
	"clinic-portal/internal/app/contracts/mocks"
	"clinic-portal/internal/app/models"
	"clinic-portal/internal/app/navigation"
	"clinic-portal/internal/app/views"
	"clinic-portal/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSessionID = "4f5c0d4e-8a59-4f3a-9a53-0d8c3f8a1e11"

func newTestMiddlewares(t *testing.T, store *mocks.MockSessionStore) *Middlewares {
	t.Helper()
	table := navigation.DefaultTable()
	renderer, err := views.NewRenderer(table, zap.NewNop())
	require.NoError(t, err)

	internalConfig := &config.InternalConfig{
		App:     config.App{MaxRequests: 100, LoginMaxRequestsPerMinute: 2, Timezone: "UTC"},
		Session: config.Session{CookieName: "clinic_session", TTLInHours: 12},
	}
	return NewMiddlewares(zap.NewNop(), internalConfig, store, table, renderer)
}

func withNav(req *http.Request, session *models.Session) *http.Request {
	nav := navigation.NewContext(testSessionID, session, constvars.ThemeLight)
	return req.WithContext(navigation.WithContext(req.Context(), nav))
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
})

func TestGuard(t *testing.T) {
	m := newTestMiddlewares(t, new(mocks.MockSessionStore))
	patient := &models.Session{Token: "tok", User: models.User{Role: "PATIENT"}}
	doctor := &models.Session{Token: "tok", User: models.User{Role: "DOCTOR"}}

	t.Run("Allow Passes Through", func(t *testing.T) {
		rr := httptest.NewRecorder()
		m.Guard(constvars.RouteMedicalHistory)(okHandler).ServeHTTP(rr, withNav(httptest.NewRequest(http.MethodGet, "/medical-history", nil), patient))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Deny Redirects To Login", func(t *testing.T) {
		rr := httptest.NewRecorder()
		m.Guard(constvars.RouteProfile)(okHandler).ServeHTTP(rr, withNav(httptest.NewRequest(http.MethodGet, "/profile", nil), nil))
		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/login?next=%2Fprofile", rr.Header().Get(constvars.HeaderLocation))
		assert.Equal(t, constvars.CacheControlNoStore, rr.Header().Get(constvars.HeaderCacheControl))
	})

	t.Run("Unknown Role Is Denied", func(t *testing.T) {
		unknown := &models.Session{Token: "tok", User: models.User{Role: "NURSE"}}
		rr := httptest.NewRecorder()
		m.Guard(constvars.RouteHome)(okHandler).ServeHTTP(rr, withNav(httptest.NewRequest(http.MethodGet, "/home", nil), unknown))
		assert.Equal(t, http.StatusSeeOther, rr.Code)
	})

	t.Run("Absent Renders Not Found", func(t *testing.T) {
		rr := httptest.NewRecorder()
		m.Guard(constvars.RouteMedicalHistory)(okHandler).ServeHTTP(rr, withNav(httptest.NewRequest(http.MethodGet, "/medical-history", nil), doctor))
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "Page not found")
	})
}

func TestSession(t *testing.T) {
	t.Run("New Visitor Gets Cookie", func(t *testing.T) {
		store := new(mocks.MockSessionStore)
		store.On("Load", mock.Anything, mock.AnythingOfType("string")).Return(nil)
		m := newTestMiddlewares(t, store)

		var nav *navigation.Context
		handler := m.Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nav = navigation.FromContext(r.Context())
		}))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/login", nil))

		cookies := rr.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "clinic_session", cookies[0].Name)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, cookies[0].Value, nav.SessionID)
		assert.False(t, nav.SignedIn())
	})

	t.Run("Existing Cookie Loads Session", func(t *testing.T) {
		store := new(mocks.MockSessionStore)
		session := &models.Session{Token: "tok", User: models.User{Role: "doctor"}}
		store.On("Load", mock.Anything, testSessionID).Return(session)
		m := newTestMiddlewares(t, store)

		var nav *navigation.Context
		handler := m.Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nav = navigation.FromContext(r.Context())
		}))
		req := httptest.NewRequest(http.MethodGet, "/home", nil)
		req.AddCookie(&http.Cookie{Name: "clinic_session", Value: testSessionID})
		req.AddCookie(&http.Cookie{Name: constvars.ThemeCookieName, Value: constvars.ThemeDark})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Empty(t, rr.Result().Cookies())
		assert.Equal(t, models.RoleDoctor, nav.Role)
		assert.Equal(t, constvars.ThemeDark, nav.Theme)
	})
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute, time.Minute)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	handler := limiter.Limit(okHandler)

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusTooManyRequests, send())

	now = now.Add(30 * time.Second)
	assert.Equal(t, http.StatusTooManyRequests, send(), "still blocked")

	now = now.Add(2 * time.Minute)
	assert.Equal(t, http.StatusOK, send())
}

func TestErrorHandlerRecovers(t *testing.T) {
	m := newTestMiddlewares(t, new(mocks.MockSessionStore))
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, withNav(httptest.NewRequest(http.MethodGet, "/home", nil), nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Something went wrong")
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares(t, new(mocks.MockSessionStore))
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "client-id", r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constvars.HeaderXRequestID, "client-id")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, "client-id", rr.Header().Get(constvars.HeaderXRequestID))
}
