package appointments

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

// appointmentUsecase owns the lifecycle state machine: it decides which
// transitions are legal, who may trigger them, and publishes one transition
// event per committed mutation. Notification fan-out lives entirely behind
// the event bus.
type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	SessionService        contracts.SessionService
	EventBus              contracts.EventBus
	Log                   *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	sessionService contracts.SessionService,
	eventBus contracts.EventBus,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			SessionService:        sessionService,
			EventBus:              eventBus,
			Log:                   logger,
		}
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	if !session.IsPatient() {
		return nil, exceptions.ErrOnlyPatientsCanBook(nil)
	}

	appointment := &models.Appointment{
		PatientID:   models.UserID(session.UserID),
		PatientName: session.Name,
		DoctorID:    models.UserID(request.DoctorID),
		DoctorName:  request.DoctorName,
		Date:        request.Date,
		Time:        request.Time,
		Reason:      request.Reason,
		Status:      constvars.AppointmentStatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error inserting appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	appointment.ID = appointmentID

	uc.publishEvent(ctx, requestID, &models.AppointmentEvent{
		Kind:          models.EventAppointmentCreated,
		AppointmentID: appointmentID,
		PatientID:     session.UserID,
		PatientName:   session.Name,
		DoctorID:      request.DoctorID,
		DoctorName:    request.DoctorName,
		Date:          request.Date,
		Time:          request.Time,
		NewStatus:     constvars.AppointmentStatusPending,
		OccurredAt:    appointment.CreatedAt,
	})

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return buildAppointmentResponse(appointment), nil
}

func (uc *appointmentUsecase) FindAllAppointments(ctx context.Context, request *requests.FindAllAppointments) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindAllAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.AppointmentRepository.FindAppointmentsByParticipant(ctx, session.Role, session.UserID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindAllAppointments error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.FindAllAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(appointments)),
	)

	response := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		response = append(response, *buildAppointmentResponse(&appointments[i]))
	}
	return response, nil
}

func (uc *appointmentUsecase) DecideAppointment(ctx context.Context, request *requests.DecideAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.DecideAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	if !session.IsDoctor() {
		return nil, exceptions.ErrOnlyDoctorsCanDecide(nil)
	}

	appointment, err := uc.AppointmentRepository.FindAppointmentByID(ctx, request.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}

	// Owner ids are compared in canonical string form; UserID decoding
	// normalizes legacy ObjectID values to the same hex representation.
	if !appointment.DoctorID.Equals(session.UserID) {
		return nil, exceptions.ErrAppointmentNotOwned(nil)
	}

	if !appointment.IsPending() {
		return nil, exceptions.ErrAppointmentNotPending(nil)
	}

	updated, err := uc.AppointmentRepository.UpdateAppointmentStatusIfPending(ctx, request.AppointmentID, request.Status)
	if err != nil {
		uc.Log.Error("appointmentUsecase.DecideAppointment error updating status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if updated == nil {
		// Lost the compare-and-set race: someone else transitioned first.
		return nil, exceptions.ErrAppointmentNotPending(nil)
	}

	uc.publishEvent(ctx, requestID, &models.AppointmentEvent{
		Kind:          models.EventAppointmentDecided,
		AppointmentID: request.AppointmentID,
		PatientID:     updated.PatientID.String(),
		PatientName:   updated.PatientName,
		DoctorID:      updated.DoctorID.String(),
		DoctorName:    updated.DoctorName,
		Date:          updated.Date,
		Time:          updated.Time,
		OldStatus:     constvars.AppointmentStatusPending,
		NewStatus:     updated.Status,
		OccurredAt:    time.Now().UTC(),
	})

	uc.Log.Info("appointmentUsecase.DecideAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
		zap.String("status", updated.Status),
	)
	return buildAppointmentResponse(updated), nil
}

func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, request *requests.CancelAppointment) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return err
	}

	if !session.IsPatient() {
		return exceptions.ErrOnlyPatientsCanCancel(nil)
	}

	appointment, err := uc.AppointmentRepository.FindAppointmentByID(ctx, request.AppointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotFound(nil)
	}

	if !appointment.PatientID.Equals(session.UserID) {
		return exceptions.ErrAppointmentNotOwned(nil)
	}

	// Only pending appointments are cancellable; an approved appointment
	// stays approved until the doctor decides otherwise.
	if !appointment.IsPending() {
		return exceptions.ErrAppointmentNotPending(nil)
	}

	updated, err := uc.AppointmentRepository.UpdateAppointmentStatusIfPending(ctx, request.AppointmentID, constvars.AppointmentStatusCancelled)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CancelAppointment error updating status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if updated == nil {
		return exceptions.ErrAppointmentNotPending(nil)
	}

	uc.publishEvent(ctx, requestID, &models.AppointmentEvent{
		Kind:          models.EventAppointmentCancelled,
		AppointmentID: request.AppointmentID,
		PatientID:     updated.PatientID.String(),
		PatientName:   updated.PatientName,
		DoctorID:      updated.DoctorID.String(),
		DoctorName:    updated.DoctorName,
		Date:          updated.Date,
		Time:          updated.Time,
		OldStatus:     constvars.AppointmentStatusPending,
		NewStatus:     constvars.AppointmentStatusCancelled,
		OccurredAt:    time.Now().UTC(),
	})

	uc.Log.Info("appointmentUsecase.CancelAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)
	return nil
}

// publishEvent reports dispatcher failures without failing the caller: the
// committed transition is the source of truth and fan-out is best-effort.
func (uc *appointmentUsecase) publishEvent(ctx context.Context, requestID string, event *models.AppointmentEvent) {
	if err := uc.EventBus.Publish(ctx, event); err != nil {
		uc.Log.Warn("appointmentUsecase event fan-out failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventKindKey, string(event.Kind)),
			zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
			zap.Error(err),
		)
	}
}

func buildAppointmentResponse(appointment *models.Appointment) *responses.Appointment {
	return &responses.Appointment{
		AppointmentID: appointment.ID,
		PatientID:     appointment.PatientID.String(),
		PatientName:   appointment.PatientName,
		DoctorID:      appointment.DoctorID.String(),
		DoctorName:    appointment.DoctorName,
		Date:          appointment.Date,
		Time:          appointment.Time,
		Reason:        appointment.Reason,
		Status:        appointment.Status,
		CreatedAt:     appointment.CreatedAt,
	}
}
