package routers

import (
	"clinic-portal/internal/app/delivery/http/controllers"
	"clinic-portal/internal/app/delivery/http/middlewares"
	"clinic-portal/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	authLimit := middlewares.AuthRateLimit()

	router.Get(constvars.RouteLogin, authController.LoginPage)
	router.With(authLimit).Post(constvars.RouteLogin, authController.Login)
	router.Get(constvars.RouteSignup, authController.SignupPage)
	router.With(authLimit).Post(constvars.RouteSignup, authController.Signup)
	router.Post(constvars.RouteLogout, authController.Logout)
}
