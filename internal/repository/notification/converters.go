package notification

import "recycling/internal/entities"

func ToDomain(n *NotificationDB) *entities.Notification {
	if n == nil {
		return nil
	}
	return &entities.Notification{
		ID: n.ID,
		Recipient: entities.Holder{
			Kind: entities.HolderKind(n.RecipientKind),
			ID:   n.RecipientID,
		},
		Title:     n.Title,
		Message:   n.Message,
		Type:      entities.NotificationType(n.Type),
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func ToDomainList(notificationModels []NotificationDB) []entities.Notification {
	notifications := make([]entities.Notification, 0, len(notificationModels))
	for i := range notificationModels {
		notifications = append(notifications, *ToDomain(&notificationModels[i]))
	}
	return notifications
}
