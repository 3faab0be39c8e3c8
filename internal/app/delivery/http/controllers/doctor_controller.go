package controllers

import (
	"net/http"
	"strings"

	"clinic-portal/internal/app/pages"
	"clinic-portal/internal/pkg/constvars"
)

type DoctorController struct {
	*PageSupport
}

func NewDoctorController(support *PageSupport) *DoctorController {
	return &DoctorController{PageSupport: support}
}

// Directory lists doctors. A specialty other than the mounted one fetches
// again; a q filter alone never does.
func (ctrl *DoctorController) Directory(w http.ResponseWriter, r *http.Request) {
	nav := navOf(r)
	specialty := strings.TrimSpace(r.URL.Query().Get("specialty"))
	fresh := func() *pages.DoctorsPage { return pages.NewDoctorsPage(nav, ctrl.Deps, specialty) }
	show := func(page *pages.DoctorsPage) {
		ctrl.render(w, r, constvars.RouteDoctors, constvars.PageDoctors, page)
	}

	query, ok := queryFilter(r)
	if !ok {
		pages.Mount(r.Context(), ctrl.Registry, nav.SessionID, fresh(), show)
		return
	}
	pages.Use(r.Context(), ctrl.Registry, nav.SessionID, fresh, func(page *pages.DoctorsPage) {
		if page.Specialty != specialty {
			page.Specialty = specialty
			page.Mount(r.Context())
		}
		page.Filter(query)
		show(page)
	})
}

func (ctrl *DoctorController) Patients(w http.ResponseWriter, r *http.Request) {
	nav := navOf(r)
	fresh := func() *pages.PatientsPage { return pages.NewPatientsPage(nav, ctrl.Deps) }
	show := func(page *pages.PatientsPage) {
		ctrl.render(w, r, constvars.RoutePatients, constvars.PagePatients, page)
	}

	if query, ok := queryFilter(r); ok {
		pages.Use(r.Context(), ctrl.Registry, nav.SessionID, fresh, func(page *pages.PatientsPage) {
			page.Filter(query)
			show(page)
		})
		return
	}
	pages.Mount(r.Context(), ctrl.Registry, nav.SessionID, fresh(), show)
}
