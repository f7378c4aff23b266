package entities

import "time"

type Notification struct {
	ID        int64
	Recipient Holder
	Title     string
	Message   string
	Type      NotificationType
	IsRead    bool
	CreatedAt time.Time
}

type NotificationType string

const (
	NotificationOrder   NotificationType = "order"
	NotificationReward  NotificationType = "reward"
	NotificationVoucher NotificationType = "voucher"
	NotificationChat    NotificationType = "chat"
	NotificationSystem  NotificationType = "system"
)

func (t NotificationType) String() string {
	return string(t)
}
