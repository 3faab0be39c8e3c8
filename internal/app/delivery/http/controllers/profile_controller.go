package controllers

import (
	"net/http"

	"clinic-portal/internal/app/navigation"
	"clinic-portal/internal/app/pages"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/dto/requests"
)

// ProfileController serves /profile. Doctors get the doctor profile, everyone
// else the patient one.
type ProfileController struct {
	*PageSupport
}

func NewProfileController(support *PageSupport) *ProfileController {
	return &ProfileController{PageSupport: support}
}

func (ctrl *ProfileController) freshPatient(nav *navigation.Context) func() *pages.PatientProfilePage {
	return func() *pages.PatientProfilePage { return pages.NewPatientProfilePage(nav, ctrl.Deps) }
}

func (ctrl *ProfileController) freshDoctor(nav *navigation.Context) func() *pages.DoctorProfilePage {
	return func() *pages.DoctorProfilePage { return pages.NewDoctorProfilePage(nav, ctrl.Deps) }
}

func (ctrl *ProfileController) showPatient(w http.ResponseWriter, r *http.Request) func(*pages.PatientProfilePage) {
	return func(page *pages.PatientProfilePage) {
		ctrl.render(w, r, constvars.RouteProfile, constvars.PageProfile, page)
	}
}

func (ctrl *ProfileController) showDoctor(w http.ResponseWriter, r *http.Request) func(*pages.DoctorProfilePage) {
	return func(page *pages.DoctorProfilePage) {
		ctrl.render(w, r, constvars.RouteProfile, constvars.PageDoctorProfile, page)
	}
}

func (ctrl *ProfileController) Show(w http.ResponseWriter, r *http.Request) {
	nav := navOf(r)
	if nav.IsDoctor() {
		pages.Mount(r.Context(), ctrl.Registry, nav.SessionID, ctrl.freshDoctor(nav)(), ctrl.showDoctor(w, r))
		return
	}
	pages.Mount(r.Context(), ctrl.Registry, nav.SessionID, ctrl.freshPatient(nav)(), ctrl.showPatient(w, r))
}

func (ctrl *ProfileController) Edit(w http.ResponseWriter, r *http.Request) {
	nav := navOf(r)
	if nav.IsDoctor() {
		pages.Use(r.Context(), ctrl.Registry, nav.SessionID, ctrl.freshDoctor(nav), func(page *pages.DoctorProfilePage) {
			page.Edit()
			ctrl.showDoctor(w, r)(page)
		})
		return
	}
	pages.Use(r.Context(), ctrl.Registry, nav.SessionID, ctrl.freshPatient(nav), func(page *pages.PatientProfilePage) {
		page.Edit()
		ctrl.showPatient(w, r)(page)
	})
}

func (ctrl *ProfileController) Cancel(w http.ResponseWriter, r *http.Request) {
	nav := navOf(r)
	if nav.IsDoctor() {
		pages.Use(r.Context(), ctrl.Registry, nav.SessionID, ctrl.freshDoctor(nav), func(page *pages.DoctorProfilePage) {
			page.Cancel()
			ctrl.showDoctor(w, r)(page)
		})
		return
	}
	pages.Use(r.Context(), ctrl.Registry, nav.SessionID, ctrl.freshPatient(nav), func(page *pages.PatientProfilePage) {
		page.Cancel()
		ctrl.showPatient(w, r)(page)
	})
}

func (ctrl *ProfileController) Save(w http.ResponseWriter, r *http.Request) {
	nav := navOf(r)
	if nav.IsDoctor() {
		request := new(requests.UpdateDoctorProfile)
		if !ctrl.bindForm(w, r, request) {
			return
		}
		err := pages.RunSave(r.Context(), ctrl.SaveLock, ctrl.Registry, nav.SessionID, ctrl.freshDoctor(nav),
			func(page *pages.DoctorProfilePage) error { return page.Save(r.Context(), request) },
			ctrl.showDoctor(w, r),
		)
		ctrl.logSave(r, constvars.PageDoctorProfile, err)
		return
	}

	request := new(requests.UpdatePatientProfile)
	if !ctrl.bindForm(w, r, request) {
		return
	}
	err := pages.RunSave(r.Context(), ctrl.SaveLock, ctrl.Registry, nav.SessionID, ctrl.freshPatient(nav),
		func(page *pages.PatientProfilePage) error { return page.Save(r.Context(), request) },
		ctrl.showPatient(w, r),
	)
	ctrl.logSave(r, constvars.PageProfile, err)
}
