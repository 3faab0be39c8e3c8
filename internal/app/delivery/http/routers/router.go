package routers

import (
	"clinic-portal/internal/app/config"
	"clinic-portal/internal/app/delivery/http/controllers"
	"clinic-portal/internal/app/delivery/http/middlewares"
	"clinic-portal/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	accessLogger *logrus.Logger,
	middlewares *middlewares.Middlewares,
	shellController *controllers.ShellController,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	appointmentController *controllers.AppointmentController,
	doctorController *controllers.DoctorController,
	patientController *controllers.PatientController,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	if accessLogger != nil {
		router.Use(middlewares.RequestLogger(internalConfig.App, accessLogger))
	}
	router.Use(middlewares.ErrorHandler)

	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.GlobalRateLimit())

	router.Get(constvars.RouteHealth, shellController.Health)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Session)

		attachShellRoutes(r, middlewares, shellController)
		attachAuthRoutes(r, middlewares, authController)
		attachProfileRoutes(r, middlewares, profileController)
		attachAppointmentRoutes(r, middlewares, appointmentController)
		attachDoctorRoutes(r, middlewares, doctorController)
		attachPatientRoutes(r, middlewares, patientController)

		r.NotFound(shellController.NotFound)
	})
}
