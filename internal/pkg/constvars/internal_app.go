package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "MDBK_SVC_"
)

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

// Appointment lifecycle statuses. The only legal transitions are
// pending -> approved | rejected (doctor) and pending -> cancelled (patient).
const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusApproved  = "approved"
	AppointmentStatusRejected  = "rejected"
	AppointmentStatusCancelled = "cancelled"
)

const (
	NotificationTypeAppointmentCreated   = "appointment_created"
	NotificationTypeAppointmentApproved  = "appointment_approved"
	NotificationTypeAppointmentRejected  = "appointment_rejected"
	NotificationTypeAppointmentCancelled = "appointment_cancelled"
)

// Most-recent-first cap applied when listing a recipient's notifications.
const NotificationListLimit = 20

const (
	MongoCollectionAppointments  = "appointments"
	MongoCollectionNotifications = "notifications"
	MongoCollectionUsers         = "users"
)

const (
	URLParamAppointmentID  = "appointmentID"
	URLParamNotificationID = "notificationID"
)

const (
	SessionKeyPrefix = "session:"
)

// Notification message templates.
const (
	NotificationMsgCreatedDoctor    = "New appointment request from %s on %s at %s"
	NotificationMsgCreatedPatient   = "Your appointment request with Dr. %s has been submitted and is pending approval"
	NotificationMsgApprovedPatient  = "Your appointment with Dr. %s has been approved"
	NotificationMsgRejectedPatient  = "Your appointment with Dr. %s has been rejected"
	NotificationMsgCancelledDoctor  = "Appointment with %s has been cancelled"
	NotificationEmailSubjectCreated = "New appointment request"
	NotificationEmailSubjectUpdate  = "Appointment status update"
)
