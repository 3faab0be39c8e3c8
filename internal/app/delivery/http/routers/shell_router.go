package routers

import (
	"clinic-portal/internal/app/delivery/http/controllers"
	"clinic-portal/internal/app/delivery/http/middlewares"
	"clinic-portal/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachShellRoutes(router chi.Router, middlewares *middlewares.Middlewares, shellController *controllers.ShellController) {
	router.Get(constvars.RouteRoot, shellController.Root)
	router.Post(constvars.RouteTheme, shellController.Theme)
	router.With(middlewares.Guard(constvars.RouteHome)).Get(constvars.RouteHome, shellController.Home)
}
