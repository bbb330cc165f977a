package models

import (
	"medibook-service/internal/pkg/constvars"
	"time"
)

type Appointment struct {
	ID          string    `bson:"_id,omitempty"`
	PatientID   UserID    `bson:"patientId"`
	PatientName string    `bson:"patientName"`
	DoctorID    UserID    `bson:"doctorId"`
	DoctorName  string    `bson:"doctorName"`
	Date        string    `bson:"date"`
	Time        string    `bson:"time"`
	Reason      string    `bson:"reason"`
	Status      string    `bson:"status"`
	CreatedAt   time.Time `bson:"createdAt"`
}

func (a *Appointment) IsPending() bool {
	return a.Status == constvars.AppointmentStatusPending
}
