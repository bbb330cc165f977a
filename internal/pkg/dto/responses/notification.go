package responses

import "time"

type Notification struct {
	NotificationID string    `json:"notification_id"`
	Message        string    `json:"message"`
	Type           string    `json:"type"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}
