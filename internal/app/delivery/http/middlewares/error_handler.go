package middlewares

import (
	"errors"
	"fmt"
	"net/http"

	"clinic-portal/internal/app/views"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/exceptions"
	"clinic-portal/internal/pkg/utils"

	"go.uber.org/zap"
)

// ErrorHandler turns a panic anywhere below it into the generic error page.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				var err error
				switch x := rec.(type) {
				case string:
					err = errors.New(x)
				case error:
					err = x
				default:
					err = fmt.Errorf("unknown error: %v", x)
				}

				m.Log.Error("Recovered from panic",
					zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r.Context())),
					zap.String(constvars.LoggingEndpointKey, r.URL.Path),
					zap.Error(err),
				)
				m.RenderError(w, r, exceptions.ErrServerProcess(err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// RenderError shows err on the error page with its status code. Should the
// page itself fail, a plain text answer is written instead.
func (m *Middlewares) RenderError(w http.ResponseWriter, r *http.Request, err error) {
	status := exceptions.StatusCodeOf(err)
	message := exceptions.ClientMessageOr(err, constvars.ErrClientSomethingWrongWithApplication)

	renderErr := m.Views.Render(w, r, status, views.View{
		Name:  constvars.PageError,
		Title: "Error",
		Page:  message,
	})
	if renderErr != nil {
		http.Error(w, message, status)
	}
}

func (m *Middlewares) RenderNotFound(w http.ResponseWriter, r *http.Request) {
	err := m.Views.Render(w, r, http.StatusNotFound, views.View{
		Name:  constvars.PageNotFound,
		Title: "Not Found",
	})
	if err != nil {
		http.Error(w, constvars.ErrClientPageNotFound, http.StatusNotFound)
	}
}
