package chat

import "recycling/internal/entities"

func ToDomain(m *ChatMessageDB) *entities.ChatMessage {
	if m == nil {
		return nil
	}
	return &entities.ChatMessage{
		ID:           m.ID,
		AssignmentID: m.AssignmentID,
		SenderType:   entities.HolderKind(m.SenderType),
		SenderEmail:  m.SenderEmail,
		Message:      m.Message,
		CreatedAt:    m.CreatedAt,
	}
}
