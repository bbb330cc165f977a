package notifications

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

type notificationUsecase struct {
	NotificationRepository contracts.NotificationRepository
	SessionService         contracts.SessionService
	Log                    *zap.Logger
}

var (
	notificationUsecaseInstance contracts.NotificationUsecase
	onceNotificationUsecase     sync.Once
)

func NewNotificationUsecase(
	notificationRepository contracts.NotificationRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.NotificationUsecase {
	onceNotificationUsecase.Do(func() {
		notificationUsecaseInstance = &notificationUsecase{
			NotificationRepository: notificationRepository,
			SessionService:         sessionService,
			Log:                    logger,
		}
	})
	return notificationUsecaseInstance
}

func (uc *notificationUsecase) FindAllNotifications(ctx context.Context, request *requests.FindAllNotifications) ([]responses.Notification, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.FindAllNotifications called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	notifications, err := uc.NotificationRepository.FindNotificationsByRecipient(ctx, session.UserID, constvars.NotificationListLimit)
	if err != nil {
		uc.Log.Error("notificationUsecase.FindAllNotifications error fetching notifications",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("notificationUsecase.FindAllNotifications succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingNotificationCountKey, len(notifications)),
	)

	response := make([]responses.Notification, 0, len(notifications))
	for i := range notifications {
		response = append(response, *buildNotificationResponse(&notifications[i]))
	}
	return response, nil
}

func (uc *notificationUsecase) MarkNotificationRead(ctx context.Context, request *requests.MarkNotificationRead) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.MarkNotificationRead called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNotificationIDKey, request.NotificationID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return err
	}

	notification, err := uc.NotificationRepository.FindNotificationByID(ctx, request.NotificationID)
	if err != nil {
		return err
	}
	if notification == nil {
		return exceptions.ErrNotificationNotFound(nil)
	}

	if !notification.UserID.Equals(session.UserID) {
		return exceptions.ErrNotificationNotOwned(nil)
	}

	// Marking an already-read notification again is a no-op.
	if err := uc.NotificationRepository.MarkNotificationRead(ctx, request.NotificationID); err != nil {
		uc.Log.Error("notificationUsecase.MarkNotificationRead error updating notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("notificationUsecase.MarkNotificationRead succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNotificationIDKey, request.NotificationID),
	)
	return nil
}

func buildNotificationResponse(notification *models.Notification) *responses.Notification {
	return &responses.Notification{
		NotificationID: notification.ID,
		Message:        notification.Message,
		Type:           notification.Type,
		Read:           notification.Read,
		CreatedAt:      notification.CreatedAt,
	}
}
