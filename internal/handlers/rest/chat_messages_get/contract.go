//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=chat_messages_get_test
package chat_messages_get

import (
	"context"

	"recycling/internal/entities"
	"recycling/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Messages(ctx context.Context, assignmentID int64, requester entities.Holder) ([]entities.ChatMessage, error)
}
