package routers

import (
	"clinic-portal/internal/app/delivery/http/controllers"
	"clinic-portal/internal/app/delivery/http/middlewares"
	"clinic-portal/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachProfileRoutes(router chi.Router, middlewares *middlewares.Middlewares, profileController *controllers.ProfileController) {
	router.Route(constvars.RouteProfile, func(r chi.Router) {
		r.Use(middlewares.Guard(constvars.RouteProfile))
		r.Get("/", profileController.Show)
		r.Post("/edit", profileController.Edit)
		r.Post("/cancel", profileController.Cancel)
		r.Post("/save", profileController.Save)
	})
}
