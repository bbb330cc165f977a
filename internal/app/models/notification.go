package models

import "time"

// Notification is immutable once inserted except for the Read flag, which is
// flipped false -> true by the owning recipient.
type Notification struct {
	ID        string    `bson:"_id,omitempty"`
	UserID    UserID    `bson:"userId"`
	UserName  string    `bson:"userName"`
	Message   string    `bson:"message"`
	Type      string    `bson:"type"`
	Read      bool      `bson:"read"`
	CreatedAt time.Time `bson:"createdAt"`
}
