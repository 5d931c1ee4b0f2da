package notification

import "context"

type NotificationService interface {
	Create(ctx context.Context, req CreateNotificationRequest) (NotificationResponse, error)
	List(ctx context.Context, req ListNotificationsRequest) (ListNotificationsResponse, error)
	MarkAsRead(ctx context.Context, req MarkAsReadRequest) error
}
