package chat

import "time"

type ChatMessageDB struct {
	ID           int64
	AssignmentID int64
	SenderType   string
	SenderEmail  string
	Message      string
	CreatedAt    time.Time
}
