package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"datetime": "must match the format %s",
	"role":     "must be either 'patient' or 'doctor'",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"oneof":    true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "Cannot process request, please check your request"
	ErrClientSomethingWrongWithApplication = "Something wrong with the application, please contact admin"
	ErrClientServerLongRespond             = "Server is taking too long to respond, please try again later"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "You need to login first"
	ErrClientInvalidEmailOrPassword        = "Invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientOnlyPatientsCanBook           = "Only patients can book appointments"
	ErrClientOnlyDoctorsCanDecide          = "Only doctors can update appointment status"
	ErrClientOnlyPatientsCanCancel         = "Only patients can cancel appointments"
	ErrClientAppointmentNotFound           = "Appointment not found"
	ErrClientAppointmentNotOwned           = "You do not have permission to update this appointment"
	ErrClientAppointmentNotPending         = "Appointment is no longer pending"
	ErrClientNotificationNotFound          = "Notification not found"
	ErrClientNotificationNotOwned          = "You do not have permission to update this notification"
)

// Error messages for developers
const (
	ErrDevValidationFailed             = "Request validation failed"
	ErrDevURLParamIDValidationFailed   = "URL parameter '%s' failed validation"
	ErrDevCannotParseJSON              = "Failed to parse JSON payload"
	ErrDevCannotMarshalJSON            = "Failed to marshal JSON payload"
	ErrDevServerDeadlineExceeded       = "Server deadline exceeded while processing request"
	ErrDevMissingRequestID             = "Request ID not found in request context"
	ErrDevMissingSessionData           = "Session data not found in request context"
	ErrDevAuthTokenMissing             = "Authorization token missing from request"
	ErrDevAuthTokenInvalid             = "Authorization token invalid"
	ErrDevAuthTokenInvalidOrExpired    = "Authorization token invalid or expired"
	ErrDevAuthGenerateToken            = "Failed to generate JWT token"
	ErrDevAuthSigningMethod            = "Unexpected JWT signing method"
	ErrDevAuthInvalidSession           = "Session not found or expired"
	ErrDevInvalidCredentials           = "Credentials do not match any user"
	ErrDevRoleTypeDoesntMatch          = "Session role does not allow this operation"
	ErrDevFailedToHashPassword         = "Failed to hash password with bcrypt"
	ErrDevEmailAlreadyExists           = "User with this email already exists"
	ErrDevUserNotExists                = "User does not exist"
	ErrDevAppointmentNotExists         = "Appointment document does not exist"
	ErrDevAppointmentOwnershipMismatch = "Canonical owner id does not match session user id"
	ErrDevAppointmentNotPending        = "Appointment status is not 'pending'; transition refused"
	ErrDevNotificationNotExists        = "Notification document does not exist"
	ErrDevNotificationOwnershipError   = "Notification recipient does not match session user id"
	ErrDevDBFailedToFindDocument       = "MongoDB failed to find document(s)"
	ErrDevDBFailedToInsertDocument     = "MongoDB failed to insert document"
	ErrDevDBFailedToUpdateDocument     = "MongoDB failed to update document"
	ErrDevDBFailedToIterateDocuments   = "MongoDB failed to iterate documents"
	ErrDevDBStringNotObjectID          = "Provided id is not a valid ObjectID hex string"
	ErrDevRedisSet                     = "Redis failed to SET key"
	ErrDevRedisGet                     = "Redis failed to GET key '%s'"
	ErrDevRedisDelete                  = "Redis failed to DEL key"
	ErrDevEventPublish                 = "Event bus delivery reported handler failure"
	ErrDevMailerPublish                = "Failed to publish email job to queue"
)
