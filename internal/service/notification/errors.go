package notification

import "errors"

var (
	ErrInvalidRecipient      = errors.New("invalid recipient")
	ErrInvalidNotificationID = errors.New("invalid notification id")
	ErrEmptyTitle            = errors.New("notification title is required")
	ErrNotificationNotFound  = errors.New("notification not found")
)
