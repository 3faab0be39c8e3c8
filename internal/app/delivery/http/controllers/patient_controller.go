package controllers

import (
	"net/http"

	"clinic-portal/internal/app/navigation"
	"clinic-portal/internal/app/pages"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/dto/requests"
)

// PatientController serves the patient-only records: medical history and
// the emergency contact.
type PatientController struct {
	*PageSupport
}

func NewPatientController(support *PageSupport) *PatientController {
	return &PatientController{PageSupport: support}
}

func (ctrl *PatientController) freshHistory(nav *navigation.Context) func() *pages.MedicalHistoryPage {
	return func() *pages.MedicalHistoryPage { return pages.NewMedicalHistoryPage(nav, ctrl.Deps) }
}

func (ctrl *PatientController) showHistory(w http.ResponseWriter, r *http.Request) func(*pages.MedicalHistoryPage) {
	return func(page *pages.MedicalHistoryPage) {
		ctrl.render(w, r, constvars.RouteMedicalHistory, constvars.PageMedicalHistory, page)
	}
}

func (ctrl *PatientController) MedicalHistory(w http.ResponseWriter, r *http.Request) {
	nav := navOf(r)
	pages.Mount(r.Context(), ctrl.Registry, nav.SessionID, ctrl.freshHistory(nav)(), ctrl.showHistory(w, r))
}

func (ctrl *PatientController) AddMedicalHistory(w http.ResponseWriter, r *http.Request) {
	nav := navOf(r)
	request := new(requests.AddMedicalHistory)
	if !ctrl.bindForm(w, r, request) {
		return
	}

	err := pages.RunSave(r.Context(), ctrl.SaveLock, ctrl.Registry, nav.SessionID, ctrl.freshHistory(nav),
		func(page *pages.MedicalHistoryPage) error { return page.Add(r.Context(), request) },
		ctrl.showHistory(w, r),
	)
	ctrl.logSave(r, constvars.PageMedicalHistory, err)
}

func (ctrl *PatientController) freshContact(nav *navigation.Context) func() *pages.EmergencyContactPage {
	return func() *pages.EmergencyContactPage { return pages.NewEmergencyContactPage(nav, ctrl.Deps) }
}

func (ctrl *PatientController) showContact(w http.ResponseWriter, r *http.Request) func(*pages.EmergencyContactPage) {
	return func(page *pages.EmergencyContactPage) {
		ctrl.render(w, r, constvars.RouteEmergencyContact, constvars.PageEmergencyContact, page)
	}
}

func (ctrl *PatientController) EmergencyContact(w http.ResponseWriter, r *http.Request) {
	nav := navOf(r)
	pages.Mount(r.Context(), ctrl.Registry, nav.SessionID, ctrl.freshContact(nav)(), ctrl.showContact(w, r))
}

func (ctrl *PatientController) EditEmergencyContact(w http.ResponseWriter, r *http.Request) {
	nav := navOf(r)
	pages.Use(r.Context(), ctrl.Registry, nav.SessionID, ctrl.freshContact(nav), func(page *pages.EmergencyContactPage) {
		page.Edit()
		ctrl.showContact(w, r)(page)
	})
}

func (ctrl *PatientController) CancelEmergencyContact(w http.ResponseWriter, r *http.Request) {
	nav := navOf(r)
	pages.Use(r.Context(), ctrl.Registry, nav.SessionID, ctrl.freshContact(nav), func(page *pages.EmergencyContactPage) {
		page.Cancel()
		ctrl.showContact(w, r)(page)
	})
}

func (ctrl *PatientController) SaveEmergencyContact(w http.ResponseWriter, r *http.Request) {
	nav := navOf(r)
	request := new(requests.UpdateEmergencyContact)
	if !ctrl.bindForm(w, r, request) {
		return
	}

	err := pages.RunSave(r.Context(), ctrl.SaveLock, ctrl.Registry, nav.SessionID, ctrl.freshContact(nav),
		func(page *pages.EmergencyContactPage) error { return page.Save(r.Context(), request) },
		ctrl.showContact(w, r),
	)
	ctrl.logSave(r, constvars.PageEmergencyContact, err)
}
