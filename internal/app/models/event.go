package models

import "time"

type AppointmentEventKind string

const (
	EventAppointmentCreated   AppointmentEventKind = "appointment:created"
	EventAppointmentDecided   AppointmentEventKind = "appointment:decided"
	EventAppointmentCancelled AppointmentEventKind = "appointment:cancelled"
)

// AppointmentEvent is the immutable record of a status change, published by the
// lifecycle engine after the store mutation commits and consumed by the
// notification dispatcher.
type AppointmentEvent struct {
	Kind          AppointmentEventKind
	AppointmentID string
	PatientID     string
	PatientName   string
	DoctorID      string
	DoctorName    string
	Date          string
	Time          string
	OldStatus     string
	NewStatus     string
	OccurredAt    time.Time
}
