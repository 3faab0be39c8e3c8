package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingServiceKey      = "service"
	LoggingRoleKey         = "role"
	LoggingPageKey         = "page"
	LoggingRouteKey        = "route"
	LoggingDecisionKey     = "decision"
	LoggingRedisKey        = "redis_key"
	LoggingLockValueKey    = "lock_value"
	LoggingEventTypeKey    = "event_type"
	LoggingQueueKey        = "queue"
	LoggingResponseSizeKey = "response_size"
	LoggingCountKey        = "count"
)
