package notifications

import (
	"context"
	"fmt"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"time"

	"go.uber.org/zap"
)

// NotificationDispatcher translates appointment transition events into
// per-recipient notification documents. It is the only event bus subscriber;
// the lifecycle engine never knows who gets notified.
type NotificationDispatcher struct {
	NotificationRepository contracts.NotificationRepository
	UserRepository         contracts.UserRepository
	MailerService          contracts.MailerService
	Log                    *zap.Logger
}

func NewNotificationDispatcher(
	notificationRepository contracts.NotificationRepository,
	userRepository contracts.UserRepository,
	mailerService contracts.MailerService,
	logger *zap.Logger,
) *NotificationDispatcher {
	return &NotificationDispatcher{
		NotificationRepository: notificationRepository,
		UserRepository:         userRepository,
		MailerService:          mailerService,
		Log:                    logger,
	}
}

// Register subscribes the dispatcher to every appointment transition kind.
func (d *NotificationDispatcher) Register(bus contracts.EventBus) {
	bus.Subscribe(models.EventAppointmentCreated, d.OnAppointmentCreated)
	bus.Subscribe(models.EventAppointmentDecided, d.OnAppointmentDecided)
	bus.Subscribe(models.EventAppointmentCancelled, d.OnAppointmentCancelled)
}

// OnAppointmentCreated notifies the doctor about the new request and sends the
// patient a confirmation that the request is awaiting approval.
func (d *NotificationDispatcher) OnAppointmentCreated(ctx context.Context, event *models.AppointmentEvent) error {
	err := d.deliver(ctx, &models.Notification{
		UserID:    models.UserID(event.DoctorID),
		UserName:  event.DoctorName,
		Message:   fmt.Sprintf(constvars.NotificationMsgCreatedDoctor, event.PatientName, event.Date, event.Time),
		Type:      constvars.NotificationTypeAppointmentCreated,
		CreatedAt: event.OccurredAt,
	}, constvars.NotificationEmailSubjectCreated)
	if err != nil {
		return err
	}

	return d.deliver(ctx, &models.Notification{
		UserID:    models.UserID(event.PatientID),
		UserName:  event.PatientName,
		Message:   fmt.Sprintf(constvars.NotificationMsgCreatedPatient, event.DoctorName),
		Type:      constvars.NotificationTypeAppointmentCreated,
		CreatedAt: event.OccurredAt,
	}, constvars.NotificationEmailSubjectCreated)
}

// OnAppointmentDecided notifies the patient of the doctor's decision.
func (d *NotificationDispatcher) OnAppointmentDecided(ctx context.Context, event *models.AppointmentEvent) error {
	message := fmt.Sprintf(constvars.NotificationMsgApprovedPatient, event.DoctorName)
	notificationType := constvars.NotificationTypeAppointmentApproved
	if event.NewStatus == constvars.AppointmentStatusRejected {
		message = fmt.Sprintf(constvars.NotificationMsgRejectedPatient, event.DoctorName)
		notificationType = constvars.NotificationTypeAppointmentRejected
	}

	return d.deliver(ctx, &models.Notification{
		UserID:    models.UserID(event.PatientID),
		UserName:  event.PatientName,
		Message:   message,
		Type:      notificationType,
		CreatedAt: event.OccurredAt,
	}, constvars.NotificationEmailSubjectUpdate)
}

// OnAppointmentCancelled notifies the doctor that the patient withdrew.
func (d *NotificationDispatcher) OnAppointmentCancelled(ctx context.Context, event *models.AppointmentEvent) error {
	return d.deliver(ctx, &models.Notification{
		UserID:    models.UserID(event.DoctorID),
		UserName:  event.DoctorName,
		Message:   fmt.Sprintf(constvars.NotificationMsgCancelledDoctor, event.PatientName),
		Type:      constvars.NotificationTypeAppointmentCancelled,
		CreatedAt: event.OccurredAt,
	}, constvars.NotificationEmailSubjectUpdate)
}

// deliver persists the in-app notification and, when a mailer is wired,
// enqueues a matching email. Email delivery is best-effort: a queue failure
// is logged and never surfaces to the transition that caused it.
func (d *NotificationDispatcher) deliver(ctx context.Context, notification *models.Notification, emailSubject string) error {
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now().UTC()
	}

	notificationID, err := d.NotificationRepository.CreateNotification(ctx, notification)
	if err != nil {
		d.Log.Error("notificationDispatcher failed to persist notification",
			zap.String(constvars.LoggingRecipientIDKey, notification.UserID.String()),
			zap.String("type", notification.Type),
			zap.Error(err),
		)
		return err
	}

	d.Log.Info("notificationDispatcher persisted notification",
		zap.String(constvars.LoggingNotificationIDKey, notificationID),
		zap.String(constvars.LoggingRecipientIDKey, notification.UserID.String()),
		zap.String("type", notification.Type),
	)

	d.sendEmail(ctx, notification, emailSubject)
	return nil
}

func (d *NotificationDispatcher) sendEmail(ctx context.Context, notification *models.Notification, subject string) {
	if d.MailerService == nil {
		return
	}

	user, err := d.UserRepository.FindUserByID(ctx, notification.UserID.String())
	if err != nil || user == nil {
		d.Log.Warn("notificationDispatcher could not resolve recipient email",
			zap.String(constvars.LoggingRecipientIDKey, notification.UserID.String()),
			zap.Error(err),
		)
		return
	}

	err = d.MailerService.SendEmail(ctx, &requests.EmailPayload{
		To:      user.Email,
		Subject: subject,
		Body:    notification.Message,
	})
	if err != nil {
		d.Log.Warn("notificationDispatcher failed to enqueue email",
			zap.String(constvars.LoggingRecipientIDKey, notification.UserID.String()),
			zap.Error(err),
		)
	}
}
