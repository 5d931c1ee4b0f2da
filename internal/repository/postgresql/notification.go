package postgresql

import (
	"context"

	"github.com/yashxjain/hrsmile-backend-go/internal/domain/notification"
	"github.com/yashxjain/hrsmile-backend-go/internal/pkg/database"
)

type notificationRepositoryImpl struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.NotificationRepository {
	return &notificationRepositoryImpl{db: db}
}

// Create implements notification.NotificationRepository. An empty recipient
// is stored as NULL and means the notification is a broadcast.
func (r *notificationRepositoryImpl) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notifications (id, recipient_id, sender_id, title, message)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5)
		RETURNING id, COALESCE(recipient_id, ''), sender_id, title, message, created_at
	`

	var created notification.Notification
	err := q.QueryRow(ctx, query, n.ID, n.RecipientID, n.SenderID, n.Title, n.Message).Scan(
		&created.ID,
		&created.RecipientID,
		&created.SenderID,
		&created.Title,
		&created.Message,
		&created.CreatedAt,
	)
	if err != nil {
		return notification.Notification{}, err
	}

	return created, nil
}

// ListForEmployee implements notification.NotificationRepository. Broadcasts
// are visible to everyone; read state is tracked per employee.
func (r *notificationRepositoryImpl) ListForEmployee(ctx context.Context, req notification.ListNotificationsRequest) ([]notification.Notification, int64, error) {
	q := GetQuerier(ctx, r.db)

	countQuery := `
		SELECT COUNT(*)
		FROM notifications n
		LEFT JOIN notification_reads r ON r.notification_id = n.id AND r.employee_id = $1
		WHERE (n.recipient_id IS NULL OR n.recipient_id = $1)
		  AND (NOT $2 OR r.notification_id IS NULL)
	`

	var total int64
	if err := q.QueryRow(ctx, countQuery, req.EmployeeID, req.UnreadOnly).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT n.id, COALESCE(n.recipient_id, ''), n.sender_id, n.title, n.message,
			   r.notification_id IS NOT NULL, r.read_at, n.created_at
		FROM notifications n
		LEFT JOIN notification_reads r ON r.notification_id = n.id AND r.employee_id = $1
		WHERE (n.recipient_id IS NULL OR n.recipient_id = $1)
		  AND (NOT $2 OR r.notification_id IS NULL)
		ORDER BY n.created_at DESC
		LIMIT $3 OFFSET $4
	`

	offset := (req.Page - 1) * req.Limit
	rows, err := q.Query(ctx, query, req.EmployeeID, req.UnreadOnly, req.Limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var notifications []notification.Notification
	for rows.Next() {
		var n notification.Notification
		if err := rows.Scan(&n.ID, &n.RecipientID, &n.SenderID, &n.Title, &n.Message, &n.IsRead, &n.ReadAt, &n.CreatedAt); err != nil {
			return nil, 0, err
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

// UnreadCount implements notification.NotificationRepository.
func (r *notificationRepositoryImpl) UnreadCount(ctx context.Context, employeeID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM notifications n
		LEFT JOIN notification_reads r ON r.notification_id = n.id AND r.employee_id = $1
		WHERE (n.recipient_id IS NULL OR n.recipient_id = $1)
		  AND r.notification_id IS NULL
	`

	var count int64
	if err := q.QueryRow(ctx, query, employeeID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// MarkAsRead implements notification.NotificationRepository.
func (r *notificationRepositoryImpl) MarkAsRead(ctx context.Context, ids []string, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notification_reads (notification_id, employee_id, read_at)
		SELECT id, $2, NOW()
		FROM notifications
		WHERE id = ANY($1) AND (recipient_id IS NULL OR recipient_id = $2)
		ON CONFLICT (notification_id, employee_id) DO NOTHING
	`

	_, err := q.Exec(ctx, query, ids, employeeID)
	return err
}
