package chat

import "errors"

var (
	ErrInvalidAssignmentID = errors.New("invalid assignment id")
	ErrEmptyMessage        = errors.New("message is required")
	ErrMessageTooLong      = errors.New("message is too long")
	ErrNotParticipant      = errors.New("you are not a participant of this chat")
)
