package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error)
	FindAllAppointments(ctx context.Context, request *requests.FindAllAppointments) ([]responses.Appointment, error)
	DecideAppointment(ctx context.Context, request *requests.DecideAppointment) (*responses.Appointment, error)
	CancelAppointment(ctx context.Context, request *requests.CancelAppointment) error
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (appointmentID string, err error)
	// FindAppointmentByID returns (nil, nil) when no document matches.
	FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	// FindAppointmentsByParticipant returns the appointments where the given
	// user is the patient or the doctor, depending on role, sorted by
	// createdAt descending.
	FindAppointmentsByParticipant(ctx context.Context, role, userID string) ([]models.Appointment, error)
	// UpdateAppointmentStatusIfPending atomically sets the status only when the
	// current status is still pending, returning the updated document or
	// (nil, nil) when the compare-and-set did not match.
	UpdateAppointmentStatusIfPending(ctx context.Context, appointmentID, newStatus string) (*models.Appointment, error)
}
