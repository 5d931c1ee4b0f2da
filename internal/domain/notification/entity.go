package notification

import "time"

// Notification is an HR announcement addressed to one employee or broadcast
// to everyone (empty RecipientID).
type Notification struct {
	ID          string
	RecipientID string
	SenderID    string
	Title       string
	Message     string
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
