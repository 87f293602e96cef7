package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email",
	"alphanum":     "must contain only alphanumeric characters",
	"min":          "must be at least %s",
	"max":          "must be at most %s",
	"numeric":      "must be a number",
	"oneof":        "must be one of [%s]",
	"gt":           "must be greater than %s",
	"gte":          "must be greater than or equal to %s",
	"lt":           "must be less than %s",
	"lte":          "must be less than or equal to %s",
	"url":          "must be a valid URL",
	"base64":       "must be a valid base64 string",
	"hexcolor":     "must be a valid hex color code",
	"phone_number": "must be a valid international phone number",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process the request"
	ErrClientSomethingWrongWithApplication = "something went wrong, please try again later"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientNotAuthorized                 = "you are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "your session is invalid or has expired, please login again"
	ErrClientServerLongRespond             = "server took too long to respond"
	ErrClientProfessionalNotFound          = "professional not found"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientTestimonialNotFound           = "testimonial not found"
	ErrClientSubdomainExhausted            = "could not allocate a unique profile handle, please try again"
	ErrClientPaymentAlreadyCompleted       = "payment already completed for this appointment"
	ErrClientInvalidImageFormat            = "invalid or unsupported image"
	ErrClientStoreUnreachable              = "backend store is not reachable"
)

// Error messages for developers
const (
	ErrDevValidationFailed           = "request validation failed"
	ErrDevCannotParseJSON            = "failed to parse JSON request body"
	ErrDevCannotMarshalJSON          = "failed to marshal JSON"
	ErrDevURLParamMissing            = "required URL parameter '%s' is missing"
	ErrDevInvalidCredentials         = "credentials do not match any admin user"
	ErrDevFailedToHashPassword       = "failed to hash password"
	ErrDevAuthGenerateToken          = "failed to generate token"
	ErrDevAuthTokenMissing           = "authorization token is missing"
	ErrDevAuthTokenInvalid           = "authorization token is invalid"
	ErrDevAuthTokenInvalidOrExpired  = "authorization token is invalid or expired"
	ErrDevAuthSigningMethod          = "unexpected token signing method"
	ErrDevAuthSessionNotFound        = "session not found or expired"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevServerProcess              = "unhandled server error"
	ErrDevProfessionalNotFound       = "no professional document matches the given identity"
	ErrDevProfessionalNotApproved    = "professional exists but is not in approved status"
	ErrDevAppointmentNotFound        = "no appointment document matches the given identity"
	ErrDevSubdomainExhausted         = "subdomain allocation exhausted all suffix attempts"
	ErrDevPaymentAlreadySettled      = "settlement already exists for this appointment"
	ErrDevImageValidationFailed      = "image decoding or validation failed"
	ErrDevDBFailedToFindDocument     = "failed to find document in the database"
	ErrDevDBFailedToInsertDocument   = "failed to insert document into the database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document in the database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate over documents from the database"
	ErrDevDBFailedToEnsureIndexes    = "failed to ensure collection indexes"
	ErrDevRedisSetData               = "failed to set data to redis"
	ErrDevRedisGetData               = "failed to get data from redis"
	ErrDevRedisDeleteData            = "failed to delete data from redis"
	ErrDevMinioFailedToCreateObject  = "failed to create object in minio storage with bucket name '%s'"
	ErrDevMinioFailedToPresignObject = "failed to get presigned object URL from minio storage with bucket name '%s'"
	ErrDevGatewayCreateOrder         = "payment gateway failed to create order"
	ErrDevStoreUnreachable           = "document store did not respond to ping"
)
