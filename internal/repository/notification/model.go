package notification

import "time"

type NotificationDB struct {
	ID            int64
	RecipientKind string
	RecipientID   int64
	Title         string
	Message       string
	Type          string
	IsRead        bool
	CreatedAt     time.Time
}
