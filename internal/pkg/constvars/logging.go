package constvars

const (
	LoggingRequestIDKey         = "request_id"
	LoggingSessionDataKey       = "session_data"
	LoggingMethodKey            = "method"
	LoggingEndpointKey          = "endpoint"
	LoggingRemoteAddrKey        = "remote_addr"
	LoggingUserAgentKey         = "user_agent"
	LoggingQueryKey             = "query"
	LoggingStatusCodeKey        = "status_code"
	LoggingDurationKey          = "duration"
	LoggingSuccessKey           = "success"
	LoggingAppointmentIDKey     = "appointment_id"
	LoggingAppointmentCountKey  = "appointment_count"
	LoggingNotificationIDKey    = "notification_id"
	LoggingNotificationCountKey = "notification_count"
	LoggingEventKindKey         = "event_kind"
	LoggingRecipientIDKey       = "recipient_id"
	LoggingUserIDKey            = "user_id"
	LoggingRoleKey              = "role"
)
