package controllers

import (
	"net/http"

	"clinic-portal/internal/app/delivery/http/middlewares"
	"clinic-portal/internal/app/navigation"
	"clinic-portal/internal/app/pages"
	"clinic-portal/internal/app/views"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/exceptions"
	"clinic-portal/internal/pkg/utils"

	"go.uber.org/zap"
)

// PageSupport is what every page controller shares: the view-state registry,
// the save lock, the page dependencies and the renderer.
type PageSupport struct {
	Log         *zap.Logger
	Views       *views.Renderer
	Registry    *pages.Registry
	SaveLock    *pages.SaveLock
	Deps        pages.Deps
	Middlewares *middlewares.Middlewares
}

func NewPageSupport(
	logger *zap.Logger,
	renderer *views.Renderer,
	registry *pages.Registry,
	saveLock *pages.SaveLock,
	deps pages.Deps,
	mw *middlewares.Middlewares,
) *PageSupport {
	return &PageSupport{
		Log:         logger,
		Views:       renderer,
		Registry:    registry,
		SaveLock:    saveLock,
		Deps:        deps,
		Middlewares: mw,
	}
}

// render shows page under the route path it belongs to, whatever the action
// path of the request was.
func (s *PageSupport) render(w http.ResponseWriter, r *http.Request, route, name string, page interface{}) {
	err := s.Views.Render(w, r, http.StatusOK, views.View{Name: name, Path: route, Page: page})
	if err != nil {
		s.Middlewares.RenderError(w, r, err)
	}
}

// bindForm parses the form into dst. A body that cannot be parsed renders
// the error page and reports false.
func (s *PageSupport) bindForm(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := utils.BindForm(r, dst); err != nil {
		s.Log.Warn("PageSupport.bindForm error parsing form",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r.Context())),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.Error(err),
		)
		s.Middlewares.RenderError(w, r, exceptions.ErrCannotParseForm(err))
		return false
	}
	return true
}

func (s *PageSupport) logSave(r *http.Request, page string, err error) {
	if err == nil {
		return
	}
	s.Log.Info("Page action did not complete",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r.Context())),
		zap.String(constvars.LoggingPageKey, page),
		zap.Error(err),
	)
}

func navOf(r *http.Request) *navigation.Context {
	return navigation.FromContext(r.Context())
}

// queryFilter reports the q parameter and whether the request carried one.
func queryFilter(r *http.Request) (string, bool) {
	values := r.URL.Query()
	if _, ok := values["q"]; !ok {
		return "", false
	}
	return values.Get("q"), true
}
