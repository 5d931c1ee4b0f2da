package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/yashxjain/hrsmile-backend-go/internal/domain/notification"
	"github.com/yashxjain/hrsmile-backend-go/internal/pkg/database"
)

type NotificationServiceImpl struct {
	db *database.DB
	notification.NotificationRepository
}

func NewNotificationService(db *database.DB, notificationRepo notification.NotificationRepository) notification.NotificationService {
	return &NotificationServiceImpl{
		db:                     db,
		NotificationRepository: notificationRepo,
	}
}

// Create implements notification.NotificationService.
func (s *NotificationServiceImpl) Create(ctx context.Context, req notification.CreateNotificationRequest) (notification.NotificationResponse, error) {
	if err := req.Validate(); err != nil {
		return notification.NotificationResponse{}, err
	}

	created, err := s.NotificationRepository.Create(ctx, notification.Notification{
		ID:          uuid.New().String(),
		RecipientID: req.RecipientID,
		SenderID:    req.SenderID,
		Title:       req.Title,
		Message:     req.Message,
	})
	if err != nil {
		return notification.NotificationResponse{}, fmt.Errorf("failed to create notification: %w", err)
	}

	return toResponse(created), nil
}

// List implements notification.NotificationService.
func (s *NotificationServiceImpl) List(ctx context.Context, req notification.ListNotificationsRequest) (notification.ListNotificationsResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 {
		req.Limit = 25
	}

	notifications, total, err := s.NotificationRepository.ListForEmployee(ctx, req)
	if err != nil {
		return notification.ListNotificationsResponse{}, fmt.Errorf("failed to list notifications: %w", err)
	}

	unread, err := s.NotificationRepository.UnreadCount(ctx, req.EmployeeID)
	if err != nil {
		return notification.ListNotificationsResponse{}, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	responses := make([]notification.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, toResponse(n))
	}

	return notification.ListNotificationsResponse{
		Notifications: responses,
		Total:         total,
		UnreadCount:   unread,
		Page:          req.Page,
		Limit:         req.Limit,
	}, nil
}

// MarkAsRead implements notification.NotificationService.
func (s *NotificationServiceImpl) MarkAsRead(ctx context.Context, req notification.MarkAsReadRequest) error {
	if len(req.NotificationIDs) == 0 {
		return nil
	}
	if err := s.NotificationRepository.MarkAsRead(ctx, req.NotificationIDs, req.EmployeeID); err != nil {
		return fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	return nil
}

func toResponse(n notification.Notification) notification.NotificationResponse {
	return notification.NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}
