package notification

import (
	"strings"

	"recycling/internal/entities"
)

func isValidRecipient(recipient entities.Holder) bool {
	return recipient.Kind.IsValid() && recipient.ID > 0
}

func isValidType(kind entities.NotificationType) bool {
	switch kind {
	case entities.NotificationOrder,
		entities.NotificationReward,
		entities.NotificationVoucher,
		entities.NotificationChat,
		entities.NotificationSystem:
		return true
	default:
		return false
	}
}

func isValidTitle(title string) bool {
	return strings.TrimSpace(title) != ""
}
