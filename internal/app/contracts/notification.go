package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type NotificationUsecase interface {
	FindAllNotifications(ctx context.Context, request *requests.FindAllNotifications) ([]responses.Notification, error)
	MarkNotificationRead(ctx context.Context, request *requests.MarkNotificationRead) error
}

type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *models.Notification) (notificationID string, err error)
	// FindNotificationByID returns (nil, nil) when no document matches.
	FindNotificationByID(ctx context.Context, notificationID string) (*models.Notification, error)
	FindNotificationsByRecipient(ctx context.Context, userID string, limit int64) ([]models.Notification, error)
	// MarkNotificationRead sets read=true; setting it on an already-read
	// notification is a no-op.
	MarkNotificationRead(ctx context.Context, notificationID string) error
}
