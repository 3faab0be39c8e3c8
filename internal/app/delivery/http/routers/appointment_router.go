package routers

import (
	"clinic-portal/internal/app/delivery/http/controllers"
	"clinic-portal/internal/app/delivery/http/middlewares"
	"clinic-portal/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.With(middlewares.Guard(constvars.RouteAppointments)).Get(constvars.RouteAppointments, appointmentController.List)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Guard(constvars.RouteBookAppointment))
		r.Get(constvars.RouteBookAppointment, appointmentController.BookingForm)
		r.Post(constvars.RouteBookAppointment, appointmentController.Book)
	})
}
