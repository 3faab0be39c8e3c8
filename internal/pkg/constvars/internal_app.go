package constvars

type (
	ContextKey string
)

const (
	CONTEXT_REQUEST_ID_KEY           = ContextKey("request_id")
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY = ContextKey("is_client_request_id")
	CONTEXT_NAVIGATION_KEY           = ContextKey("navigation")
)

const (
	RedisSessionKeyPrefix = "portal:session:"
	RedisLockKeyPrefix    = "portal:lock:"

	SessionFieldToken = "token"
	SessionFieldUser  = "user"

	SaveLockExpiration = 30 // seconds
)

const (
	ThemeCookieName = "clinic_theme"
	ThemeLight      = "light"
	ThemeDark       = "dark"
)

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)

// Portal event types published to the message broker.
const (
	EventUserLoggedIn       = "user.logged_in"
	EventUserLoggedOut      = "user.logged_out"
	EventAppointmentBooked  = "appointment.booked"
	EventUserRegistered     = "user.registered"
	PortalEventSourceHeader = "clinic-portal"
)
