package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-portal/internal/app/config"
	"clinic-portal/internal/app/delivery/http/controllers"
	"clinic-portal/internal/app/delivery/http/middlewares"
	"clinic-portal/internal/app/delivery/http/routers"
	"clinic-portal/internal/app/drivers/database"
	"clinic-portal/internal/app/drivers/logger"
	"clinic-portal/internal/app/drivers/messaging"
	"clinic-portal/internal/app/navigation"
	"clinic-portal/internal/app/pages"
	"clinic-portal/internal/app/services/auth"
	"clinic-portal/internal/app/services/backend/appointments"
	authClient "clinic-portal/internal/app/services/backend/auth"
	"clinic-portal/internal/app/services/backend/doctors"
	"clinic-portal/internal/app/services/backend/httpclient"
	"clinic-portal/internal/app/services/backend/patients"
	"clinic-portal/internal/app/services/session"
	"clinic-portal/internal/app/services/shared/events"
	"clinic-portal/internal/app/services/shared/locker"
	redisRepository "clinic-portal/internal/app/services/shared/redis"
	"clinic-portal/internal/app/views"
	"clinic-portal/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	accessLogger := logger.NewAccessLogger(internalConfig, "access.log")

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLogger.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	redisClient, err := database.NewRedisClient(context.Background(), driverConfig)
	if err != nil {
		zapLogger.Fatal("Error connecting to Redis", zap.Error(err))
	}

	rabbitMQ, err := messaging.NewRabbitMQ(driverConfig)
	if err != nil {
		zapLogger.Fatal("Error connecting to RabbitMQ", zap.Error(err))
	}
	if rabbitMQ == nil {
		zapLogger.Info("RabbitMQ host not configured, portal events are not published")
	}

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Redis:          redisClient,
		Logger:         zapLogger,
		AccessLogger:   accessLogger,
		RabbitMQ:       rabbitMQ,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	if err := bootstrapingTheApp(bootstrap, location); err != nil {
		zapLogger.Fatal("Error bootstrapping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, location *time.Location) error {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Redis
	redisRepo := redisRepository.NewRedisRepository(bootstrap.Redis)
	sessionStore := session.NewSessionStore(redisRepo, internalConfig.Session.TTL(), log)
	lockerService := locker.NewLockService(redisRepo, log)

	// Events
	eventPublisher, err := events.NewEventPublisher(bootstrap.RabbitMQ, internalConfig.App.RabbitMQPortalEventsQueue, log)
	if err != nil {
		return err
	}

	// Backend services
	clientOptions := httpclient.Options{
		Timeout: internalConfig.Backend.Timeout(),
		Limiter: httpclient.NewLimiter(internalConfig.Backend.MaxRequestsPerSecond),
	}
	authServiceClient := authClient.NewAuthClient(internalConfig.Backend.AuthServiceUrl, log, clientOptions)
	patientClient := patients.NewPatientClient(internalConfig.Backend.PatientServiceUrl, log, clientOptions)
	doctorClient := doctors.NewDoctorClient(internalConfig.Backend.DoctorServiceUrl, log, clientOptions)
	appointmentClient := appointments.NewAppointmentClient(internalConfig.Backend.AppointmentServiceUrl, log, clientOptions)

	// Auth
	authUsecase := auth.NewAuthUsecase(authServiceClient, patientClient, doctorClient, sessionStore, eventPublisher, log)

	// Views
	table := navigation.DefaultTable()
	renderer, err := views.NewRenderer(table, log)
	if err != nil {
		return err
	}
	middlewares := middlewares.NewMiddlewares(log, internalConfig, sessionStore, table, renderer)

	// Pages
	registry := pages.NewRegistry(log)
	if internalConfig.App.ViewRegistrySweepInMinutes > 0 {
		sweepEvery := time.Duration(internalConfig.App.ViewRegistrySweepInMinutes) * time.Minute
		workerCtx, stopWorkers := context.WithCancel(context.Background())
		if err := registry.StartSweeper(workerCtx, sweepEvery, internalConfig.Session.TTL()); err != nil {
			stopWorkers()
			return err
		}
		bootstrap.WorkerStop = stopWorkers
	}

	saveLock := pages.NewSaveLock(lockerService, constvars.SaveLockExpiration*time.Second, log)
	deps := pages.Deps{
		Patients:     patientClient,
		Doctors:      doctorClient,
		Appointments: appointmentClient,
		Events:       eventPublisher,
		Log:          log,
		Now:          func() time.Time { return time.Now().In(location) },
	}
	support := controllers.NewPageSupport(log, renderer, registry, saveLock, deps, middlewares)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		bootstrap.AccessLogger,
		middlewares,
		controllers.NewShellController(support, bootstrap.Redis),
		controllers.NewAuthController(support, authUsecase),
		controllers.NewProfileController(support),
		controllers.NewAppointmentController(support),
		controllers.NewDoctorController(support),
		controllers.NewPatientController(support),
	)
	return nil
}
