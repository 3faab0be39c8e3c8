package middlewares

import (
	"net/http"
	"net/url"

	"clinic-portal/internal/app/navigation"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/utils"

	"go.uber.org/zap"
)

// Guard checks path against the route table for the request's session.
// Denied visitors are sent to the login page; absent routes answer 404.
func (m *Middlewares) Guard(path string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nav := navigation.FromContext(r.Context())
			decision := m.Table.Evaluate(path, nav.Session)

			switch decision {
			case navigation.Allow:
				next.ServeHTTP(w, r)
				return
			case navigation.Deny:
				m.Log.Info("Route denied",
					zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r.Context())),
					zap.String(constvars.LoggingRouteKey, path),
					zap.String(constvars.LoggingRoleKey, nav.Role.String()),
				)
				target := constvars.RouteLogin
				if r.Method == http.MethodGet {
					target += "?" + url.Values{"next": {r.URL.RequestURI()}}.Encode()
				}
				RedirectSeeOther(w, r, target)
			default:
				m.Log.Info("Route absent for session",
					zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r.Context())),
					zap.String(constvars.LoggingRouteKey, path),
					zap.String(constvars.LoggingDecisionKey, decision.String()),
				)
				m.RenderNotFound(w, r)
			}
		})
	}
}

// RedirectSeeOther answers with an uncacheable 303.
func RedirectSeeOther(w http.ResponseWriter, r *http.Request, target string) {
	w.Header().Set(constvars.HeaderCacheControl, constvars.CacheControlNoStore)
	http.Redirect(w, r, target, http.StatusSeeOther)
}
