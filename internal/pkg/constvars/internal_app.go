package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "TLCZ_SVC_"
)

// Professional lifecycle statuses.
const (
	ProfessionalStatusPending  = "pending"
	ProfessionalStatusApproved = "approved"
	ProfessionalStatusRejected = "rejected"
)

// Appointment lifecycle statuses.
const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

// Payment statuses carried on the appointment.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

const (
	SettlementStatusCompleted = "completed"
)

// Dispatch outcomes returned by the notification service. Never fatal to
// callers.
const (
	DispatchOutcomeSent    = "sent"
	DispatchOutcomeSkipped = "skipped"
	DispatchOutcomeFailed  = "failed"
)

// Platform keeps a fixed cut of every settled payment. The remainder goes to
// the professional.
const (
	PlatformFeePercent = 10
)

// Subdomain allocation gives up after this many suffix probes.
const (
	MaxSubdomainAttempts = 1000
)

const (
	AppVersion        = "2.0.0"
	AppServiceName    = "telecare-service"
	AppStatusMessage  = "TeleCareZone API is operational"
	TokenTypeBearer   = "bearer"
	CurrencyINR       = "INR"
	OrderReceiptLabel = "telecare_appointment"
)

// Message templates for booking confirmations. Arguments: name, date/time,
// meeting link.
const (
	PatientBookingMessageTemplate      = "Hi %s, your appointment on %s is confirmed. Join your consultation here: %s"
	ProfessionalBookingMessageTemplate = "New paid appointment with %s on %s. Meeting link: %s"
)
