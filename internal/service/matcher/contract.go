//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=matcher_test
package matcher

import (
	"context"

	"recycling/internal/entities"
	"recycling/pkg/logger"
)

type Repository interface {
	GetActiveByBagID(ctx context.Context, bagID int64) (*entities.Assignment, error)
	Create(ctx context.Context, assignmentModify entities.AssignmentModify) (*entities.Assignment, error)
	Update(ctx context.Context, assignmentModify entities.AssignmentModify) (*entities.Assignment, error)
	FindAgentForAssignment(ctx context.Context, governorate string, excludeAgentID *int64) (*entities.Agent, error)
}

type BagRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Bag, error)
	UpdateStatus(ctx context.Context, id int64, status entities.BagStatus) error
	ListPendingIDs(ctx context.Context, limit int) ([]int64, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.User, error)
}

type Notifier interface {
	Notify(ctx context.Context, recipient entities.Holder, title, message string, kind entities.NotificationType) error
}

type EventPublisher interface {
	PublishBagStatus(ctx context.Context, bagID int64, status entities.BagStatus) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
