//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=chat_test
package chat

import (
	"context"

	"recycling/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, message entities.ChatMessage) (*entities.ChatMessage, error)
	ListForAssignment(ctx context.Context, assignmentID int64) ([]entities.ChatMessage, error)
}

type AssignmentRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Assignment, error)
}

type BagRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Bag, error)
}

type Notifier interface {
	Notify(ctx context.Context, recipient entities.Holder, title, message string, kind entities.NotificationType) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
