package notification

import (
	"context"
	"fmt"
	"strings"

	"recycling/internal/entities"
)

type Notification struct {
	repository Repository
}

func New(repository Repository) *Notification {
	return &Notification{
		repository: repository,
	}
}

// Notify пишет уведомление в текущей транзакции вызывающего, если она есть в ctx.
func (s *Notification) Notify(ctx context.Context, recipient entities.Holder, title, message string, kind entities.NotificationType) error {
	if !isValidRecipient(recipient) {
		return ErrInvalidRecipient
	}
	if !isValidTitle(title) {
		return ErrEmptyTitle
	}
	if !isValidType(kind) {
		kind = entities.NotificationSystem
	}

	_, err := s.repository.Create(ctx, entities.Notification{
		Recipient: recipient,
		Title:     strings.TrimSpace(title),
		Message:   message,
		Type:      kind,
	})
	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

func (s *Notification) List(ctx context.Context, recipient entities.Holder, unreadOnly bool) ([]entities.Notification, error) {
	if !isValidRecipient(recipient) {
		return nil, ErrInvalidRecipient
	}

	notifications, err := s.repository.List(ctx, recipient, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

func (s *Notification) MarkRead(ctx context.Context, recipient entities.Holder, id int64) error {
	if !isValidRecipient(recipient) {
		return ErrInvalidRecipient
	}
	if id <= 0 {
		return ErrInvalidNotificationID
	}

	err := s.repository.MarkRead(ctx, recipient, id)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

func (s *Notification) MarkAllRead(ctx context.Context, recipient entities.Holder) (int64, error) {
	if !isValidRecipient(recipient) {
		return 0, ErrInvalidRecipient
	}

	updated, err := s.repository.MarkAllRead(ctx, recipient)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	return updated, nil
}

func (s *Notification) Clear(ctx context.Context, recipient entities.Holder) (int64, error) {
	if !isValidRecipient(recipient) {
		return 0, ErrInvalidRecipient
	}

	deleted, err := s.repository.DeleteAll(ctx, recipient)
	if err != nil {
		return 0, fmt.Errorf("clear notifications: %w", err)
	}
	return deleted, nil
}
