package config

import (
	"clinic-portal/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", ""),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":3000"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "UTC"),
			AllowedOrigins:             utils.GetEnvStringSlice("APP_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUESTS", 20),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			LoginMaxRequestsPerMinute:  utils.GetEnvInt("APP_LOGIN_MAX_REQUESTS_PER_MINUTE", 10),
			RabbitMQPortalEventsQueue:  utils.GetEnvString("APP_RABBITMQ_PORTAL_EVENTS_QUEUE", "portal_events"),
			ViewRegistrySweepInMinutes: utils.GetEnvInt("APP_VIEW_REGISTRY_SWEEP_IN_MINUTES", 10),
		},
		Backend: Backend{
			AuthServiceUrl:        utils.GetEnvString("AUTH_SERVICE_URL", "http://localhost:8081"),
			PatientServiceUrl:     utils.GetEnvString("PATIENT_SERVICE_URL", "http://localhost:8082"),
			DoctorServiceUrl:      utils.GetEnvString("DOCTOR_SERVICE_URL", "http://localhost:8083"),
			AppointmentServiceUrl: utils.GetEnvString("APPOINTMENT_SERVICE_URL", "http://localhost:8085"),
			TimeoutInSeconds:      utils.GetEnvInt("BACKEND_TIMEOUT_IN_SECONDS", 10),
			MaxRequestsPerSecond:  utils.GetEnvFloat("BACKEND_MAX_REQUESTS_PER_SECOND", 0),
		},
		Session: Session{
			CookieName:   utils.GetEnvString("SESSION_COOKIE_NAME", "clinic_session"),
			CookieSecure: utils.GetEnvBool("SESSION_COOKIE_SECURE", false),
			TTLInHours:   utils.GetEnvInt("SESSION_TTL_IN_HOURS", 12),
		},
	}
}
