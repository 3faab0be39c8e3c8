package constvars

// Validation messages keyed by validator tag.
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"alphanum": "must contain only alphanumeric characters",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"number":   "must be a whole number",
	"oneof":    "must be one of [%s]",
	"gte":      "must be greater than or equal to %s",

	"nonnegative": "must not be negative",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientSaveInProgress                = "a save is already in progress, please wait"
	ErrClientPageNotFound                  = "page not found"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "validation failed"
	ErrDevCannotMarshalJSON        = "cannot marshal JSON"
	ErrDevCannotParseForm          = "cannot parse form body"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevReadResponseBody         = "failed to read response body"
	ErrDevBackendStatus            = "%s service responded with status %d"
	ErrDevDecodeResponse           = "failed to decode %s response"
	ErrDevEmptyToken               = "auth service returned an empty token"
	ErrDevRedisSet                 = "failed to write to redis"
	ErrDevRedisGet                 = "failed to read from redis"
	ErrDevRedisDelete              = "failed to delete from redis"
	ErrDevRedisUnlock              = "failed to release redis lock"
	ErrDevSaveInProgress           = "save lock held by another request"
	ErrDevPageNotReady             = "page %s has no loaded data to act on"
	ErrDevAppointmentInPast        = "appointment time is in the past"
	ErrDevProfileLookupFailed      = "no profile found for authenticated user"
	ErrDevPublishEvent             = "failed to publish portal event"
	ErrDevServerProcess            = "server failed to process the request"
	ErrDevRenderTemplate           = "failed to render template %s"
	ErrDevBackendRateLimitCanceled = "outbound rate limiter wait aborted"
)
