package chat

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"recycling/internal/entities"
)

const columns = `id, assignment_id, sender_type, sender_email, message, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, message entities.ChatMessage) (*entities.ChatMessage, error) {
	query := `INSERT INTO chat_messages (assignment_id, sender_type, sender_email, message)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + columns

	var messageModel ChatMessageDB
	err := r.querier.QueryRow(
		ctx,
		query,
		message.AssignmentID,
		message.SenderType.String(),
		message.SenderEmail,
		message.Message,
	).Scan(
		&messageModel.ID,
		&messageModel.AssignmentID,
		&messageModel.SenderType,
		&messageModel.SenderEmail,
		&messageModel.Message,
		&messageModel.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected chat repository create error: %w", err)
	}

	return ToDomain(&messageModel), nil
}

func (r *Repository) ListForAssignment(ctx context.Context, assignmentID int64) ([]entities.ChatMessage, error) {
	query := `SELECT ` + columns + `
	FROM chat_messages
	WHERE assignment_id = $1
	ORDER BY created_at, id`

	rows, err := r.querier.Query(ctx, query, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("unexpected chat repository list error: %w", err)
	}

	messageModels, err := pgx.CollectRows(rows, pgx.RowToStructByPos[ChatMessageDB])
	if err != nil {
		return nil, fmt.Errorf("unexpected chat repository list error: %w", err)
	}

	messages := make([]entities.ChatMessage, 0, len(messageModels))
	for i := range messageModels {
		messages = append(messages, *ToDomain(&messageModels[i]))
	}
	return messages, nil
}
