package requests

type MarkNotificationRead struct {
	NotificationID string
	SessionData    string
}

type FindAllNotifications struct {
	SessionData string
}

// EmailPayload is the message published to the mailer queue for asynchronous
// delivery of a notification by email.
type EmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
