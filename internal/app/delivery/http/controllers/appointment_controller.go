package controllers

import (
	"net/http"

	"clinic-portal/internal/app/navigation"
	"clinic-portal/internal/app/pages"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/dto/requests"
)

type AppointmentController struct {
	*PageSupport
}

func NewAppointmentController(support *PageSupport) *AppointmentController {
	return &AppointmentController{PageSupport: support}
}

func (ctrl *AppointmentController) List(w http.ResponseWriter, r *http.Request) {
	nav := navOf(r)
	fresh := func() *pages.AppointmentsPage { return pages.NewAppointmentsPage(nav, ctrl.Deps) }
	show := func(page *pages.AppointmentsPage) {
		ctrl.render(w, r, constvars.RouteAppointments, constvars.PageAppointments, page)
	}

	if query, ok := queryFilter(r); ok {
		pages.Use(r.Context(), ctrl.Registry, nav.SessionID, fresh, func(page *pages.AppointmentsPage) {
			page.Filter(query)
			show(page)
		})
		return
	}
	pages.Mount(r.Context(), ctrl.Registry, nav.SessionID, fresh(), show)
}

func (ctrl *AppointmentController) freshBooking(nav *navigation.Context) func() *pages.BookingPage {
	return func() *pages.BookingPage { return pages.NewBookingPage(nav, ctrl.Deps) }
}

func (ctrl *AppointmentController) showBooking(w http.ResponseWriter, r *http.Request) func(*pages.BookingPage) {
	return func(page *pages.BookingPage) {
		ctrl.render(w, r, constvars.RouteBookAppointment, constvars.PageBookAppointment, page)
	}
}

func (ctrl *AppointmentController) BookingForm(w http.ResponseWriter, r *http.Request) {
	nav := navOf(r)
	pages.Mount(r.Context(), ctrl.Registry, nav.SessionID, ctrl.freshBooking(nav)(), ctrl.showBooking(w, r))
}

func (ctrl *AppointmentController) Book(w http.ResponseWriter, r *http.Request) {
	nav := navOf(r)
	request := new(requests.BookAppointment)
	if !ctrl.bindForm(w, r, request) {
		return
	}

	err := pages.RunSave(r.Context(), ctrl.SaveLock, ctrl.Registry, nav.SessionID, ctrl.freshBooking(nav),
		func(page *pages.BookingPage) error { return page.Book(r.Context(), request) },
		ctrl.showBooking(w, r),
	)
	ctrl.logSave(r, constvars.PageBookAppointment, err)
}
