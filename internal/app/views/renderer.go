// Package views renders portal pages with the embedded html/template set.
package views

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"clinic-portal/internal/app/navigation"
	"clinic-portal/internal/app/pages"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/exceptions"
	"clinic-portal/internal/pkg/utils"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{
	constvars.PageLogin,
	constvars.PageSignup,
	constvars.PageHome,
	constvars.PageProfile,
	constvars.PageDoctorProfile,
	constvars.PageAppointments,
	constvars.PageBookAppointment,
	constvars.PageDoctors,
	constvars.PageMedicalHistory,
	constvars.PageEmergencyContact,
	constvars.PagePatients,
	constvars.PageNotFound,
	constvars.PageError,
}

var funcs = template.FuncMap{
	"fee": func(amount float64) string {
		return strconv.FormatFloat(amount, 'f', 2, 64)
	},
	"id": func(id int64) string {
		return strconv.FormatInt(id, 10)
	},
	"genders": func() []string {
		return []string{"MALE", "FEMALE", "OTHER"}
	},
}

// View names the template to render and the page it shows. Path and Title
// default to the request path and its route title.
type View struct {
	Name   string
	Path   string
	Title  string
	Page   interface{}
	Notice *pages.Notice
}

// ViewData is what every template receives.
type ViewData struct {
	Title   string
	Path    string
	Theme   string
	Subject string
	Nav     *navigation.Context
	Menu    []navigation.Route
	Notice  *pages.Notice
	Page    interface{}
}

type Renderer struct {
	templates map[string]*template.Template
	table     *navigation.Table
	Log       *zap.Logger
}

func NewRenderer(table *navigation.Table, logger *zap.Logger) (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New("layout").Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/search.html",
			fmt.Sprintf("templates/%s.html", name),
		)
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		templates[name] = tmpl
	}

	return &Renderer{
		templates: templates,
		table:     table,
		Log:       logger,
	}, nil
}

// Render writes view with status. When the view carries no notice, the
// page's pending one is taken.
func (v *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, view View) error {
	tmpl, ok := v.templates[view.Name]
	if !ok {
		return exceptions.ErrRenderTemplate(errors.New("unknown template"), view.Name)
	}

	nav := navigation.FromContext(r.Context())
	data := ViewData{
		Title:   view.Title,
		Path:    view.Path,
		Theme:   nav.Theme,
		Subject: utils.TokenSubject(nav.Token()),
		Nav:     nav,
		Menu:    v.table.For(nav.Session),
		Notice:  view.Notice,
		Page:    view.Page,
	}
	if data.Path == "" {
		data.Path = r.URL.Path
	}
	if data.Title == "" {
		if route, ok := v.table.Lookup(data.Path); ok {
			data.Title = route.Title
		}
	}
	if data.Notice == nil {
		if page, ok := view.Page.(pages.Page); ok {
			data.Notice = page.TakeNotice()
		}
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		v.Log.Error("Renderer.Render error executing template",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r.Context())),
			zap.String(constvars.LoggingPageKey, view.Name),
			zap.Error(err),
		)
		return exceptions.ErrRenderTemplate(err, view.Name)
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	w.Header().Set(constvars.HeaderCacheControl, constvars.CacheControlNoStore)
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
