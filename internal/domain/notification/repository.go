package notification

import "context"

type NotificationRepository interface {
	Create(ctx context.Context, n Notification) (Notification, error)
	ListForEmployee(ctx context.Context, req ListNotificationsRequest) ([]Notification, int64, error)
	UnreadCount(ctx context.Context, employeeID string) (int64, error)
	MarkAsRead(ctx context.Context, ids []string, employeeID string) error
}
