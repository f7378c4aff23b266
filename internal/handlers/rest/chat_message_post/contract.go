//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=chat_message_post_test
package chat_message_post

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
	Send(ctx context.Context, assignmentID int64, sender entities.Identity, text string) (*entities.ChatMessage, error)
}
