package models

import "time"

type User struct {
	ID             string    `bson:"_id,omitempty"`
	Email          string    `bson:"email"`
	Password       string    `bson:"password"`
	Name           string    `bson:"name"`
	Role           string    `bson:"role"`
	Specialization string    `bson:"specialization,omitempty"`
	CreatedAt      time.Time `bson:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt"`
}
