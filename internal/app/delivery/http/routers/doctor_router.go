package routers

import (
	"clinic-portal/internal/app/delivery/http/controllers"
	"clinic-portal/internal/app/delivery/http/middlewares"
	"clinic-portal/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.With(middlewares.Guard(constvars.RouteDoctors)).Get(constvars.RouteDoctors, doctorController.Directory)
	router.With(middlewares.Guard(constvars.RoutePatients)).Get(constvars.RoutePatients, doctorController.Patients)
}
