package constvars

const (
	LoggingRequestIDKey   = "request_id"
	LoggingMethodKey      = "method"
	LoggingEndpointKey    = "endpoint"
	LoggingRemoteAddrKey  = "remote_addr"
	LoggingUserAgentKey   = "user_agent"
	LoggingQueryKey       = "query"
	LoggingStatusCodeKey  = "status_code"
	LoggingDurationKey    = "duration"
	LoggingSuccessKey     = "success"
	LoggingOutcomeKey     = "outcome"
	LoggingRecipientKey   = "recipient"
	LoggingSubdomainKey   = "subdomain"
	LoggingAppointmentKey = "appointment_id"
	LoggingOrderKey       = "order_id"
)
