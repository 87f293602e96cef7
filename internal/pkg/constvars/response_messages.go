package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Service root
	ServiceStatusOperational = "operational"

	// Health
	HealthStatusHealthy  = "healthy"
	HealthStatusDegraded = "degraded"
	HealthStoreUp        = "up"
	HealthStoreDown      = "down"
)
