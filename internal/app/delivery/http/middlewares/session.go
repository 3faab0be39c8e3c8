package middlewares

import (
	"net/http"

	"clinic-portal/internal/app/navigation"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/utils"

	"go.uber.org/zap"
)

// Session makes sure the browser carries a session cookie, loads what the
// Session Store holds for it and attaches the navigation context. A missing
// or broken session simply reads as signed out.
func (m *Middlewares) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := ""
		if cookie, err := r.Cookie(m.InternalConfig.Session.CookieName); err == nil && utils.IsValidSessionID(cookie.Value) {
			sessionID = cookie.Value
		}
		if sessionID == "" {
			sessionID = utils.GenerateSessionID()
			http.SetCookie(w, m.SessionCookie(sessionID))
		}

		session := m.SessionStore.Load(r.Context(), sessionID)
		nav := navigation.NewContext(sessionID, session, ThemeOf(r))

		m.Log.Debug("Session resolved",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r.Context())),
			zap.String(constvars.LoggingRoleKey, nav.Role.String()),
			zap.Bool("signed_in", nav.SignedIn()),
		)

		next.ServeHTTP(w, r.WithContext(navigation.WithContext(r.Context(), nav)))
	})
}

func (m *Middlewares) SessionCookie(sessionID string) *http.Cookie {
	return &http.Cookie{
		Name:     m.InternalConfig.Session.CookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(m.InternalConfig.Session.TTL().Seconds()),
		HttpOnly: true,
		Secure:   m.InternalConfig.Session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredSessionCookie tells the browser to drop its session cookie.
func (m *Middlewares) ExpiredSessionCookie() *http.Cookie {
	cookie := m.SessionCookie("")
	cookie.MaxAge = -1
	return cookie
}

// ThemeOf reads the theme cookie, defaulting to light.
func ThemeOf(r *http.Request) string {
	cookie, err := r.Cookie(constvars.ThemeCookieName)
	if err == nil && cookie.Value == constvars.ThemeDark {
		return constvars.ThemeDark
	}
	return constvars.ThemeLight
}
