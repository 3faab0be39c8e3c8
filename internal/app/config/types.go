package config

import "time"

type (
	DriverConfig struct {
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}
)

type (
	InternalConfig struct {
		App     App
		Backend Backend
		Session Session
	}
	App struct {
		Env                        string
		Port                       string
		Version                    string
		Timezone                   string
		AllowedOrigins             []string
		MaxRequests                int
		ShutdownTimeoutInSeconds   int
		LoginMaxRequestsPerMinute  int
		RabbitMQPortalEventsQueue  string
		ViewRegistrySweepInMinutes int
	}
	// Backend holds the base address of every backend service the portal talks to.
	Backend struct {
		AuthServiceUrl        string
		PatientServiceUrl     string
		DoctorServiceUrl      string
		AppointmentServiceUrl string
		TimeoutInSeconds      int
		MaxRequestsPerSecond  float64
	}
	Session struct {
		CookieName   string
		CookieSecure bool
		TTLInHours   int
	}
)

func (s Session) TTL() time.Duration {
	return time.Duration(s.TTLInHours) * time.Hour
}

func (b Backend) Timeout() time.Duration {
	return time.Duration(b.TimeoutInSeconds) * time.Second
}
