package entities

import "time"

type ChatMessage struct {
	ID           int64
	AssignmentID int64
	SenderType   HolderKind
	SenderEmail  string
	Message      string
	CreatedAt    time.Time
}
