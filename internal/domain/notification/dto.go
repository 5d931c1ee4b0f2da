package notification

import (
	"time"

	"github.com/yashxjain/hrsmile-backend-go/internal/pkg/validator"
)

type CreateNotificationRequest struct {
	RecipientID string `json:"recipient_id"` // empty broadcasts to everyone
	SenderID    string `json:"-"`
	Title       string `json:"title"`
	Message     string `json:"message"`
}

func (r *CreateNotificationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{
			Field:   "message",
			Message: "message is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListNotificationsRequest struct {
	EmployeeID string
	UnreadOnly bool
	Page       int
	Limit      int
}

type MarkAsReadRequest struct {
	NotificationIDs []string `json:"notification_ids"`
	EmployeeID      string   `json:"-"`
}

type NotificationResponse struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	IsRead    bool       `json:"is_read"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int64                  `json:"total"`
	UnreadCount   int64                  `json:"unread_count"`
	Page          int                    `json:"page"`
	Limit         int                    `json:"limit"`
}
