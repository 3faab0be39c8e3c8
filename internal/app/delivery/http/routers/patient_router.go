package routers

import (
	"clinic-portal/internal/app/delivery/http/controllers"
	"clinic-portal/internal/app/delivery/http/middlewares"
	"clinic-portal/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *controllers.PatientController) {
	router.Route(constvars.RouteMedicalHistory, func(r chi.Router) {
		r.Use(middlewares.Guard(constvars.RouteMedicalHistory))
		r.Get("/", patientController.MedicalHistory)
		r.Post("/add", patientController.AddMedicalHistory)
	})

	router.Route(constvars.RouteEmergencyContact, func(r chi.Router) {
		r.Use(middlewares.Guard(constvars.RouteEmergencyContact))
		r.Get("/", patientController.EmergencyContact)
		r.Post("/edit", patientController.EditEmergencyContact)
		r.Post("/cancel", patientController.CancelEmergencyContact)
		r.Post("/save", patientController.SaveEmergencyContact)
	})
}
