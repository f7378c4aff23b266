//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"

	"recycling/internal/entities"
	"recycling/pkg/logger"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.Assignment, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Assignment, error)
	GetLatestByBagID(ctx context.Context, bagID int64) (*entities.Assignment, error)
	Update(ctx context.Context, assignmentModify entities.AssignmentModify) (*entities.Assignment, error)

	CountInTransitForAgent(ctx context.Context, agentID int64) (int64, error)
	ListOffered(ctx context.Context, agentID int64, governorate string) ([]entities.Assignment, error)
	ListActiveForAgent(ctx context.Context, agentID int64) ([]entities.Assignment, error)
	ListHistoryForAgent(ctx context.Context, agentID int64) ([]entities.Assignment, error)
}

type BagRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Bag, error)
	UpdateStatus(ctx context.Context, id int64, status entities.BagStatus) error
	ReplaceItems(ctx context.Context, bagID int64, items []entities.BagItem) error
	ItemTypes(ctx context.Context) ([]entities.ItemType, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.User, error)
}

type AgentRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Agent, error)
}

type Ledger interface {
	AddActivity(ctx context.Context, activity entities.Activity) (*entities.Balance, error)
	Credit(ctx context.Context, credit entities.Credit) (*entities.Balance, error)
}

type Notifier interface {
	Notify(ctx context.Context, recipient entities.Holder, title, message string, kind entities.NotificationType) error
}

type EventPublisher interface {
	PublishBagStatus(ctx context.Context, bagID int64, status entities.BagStatus) error
}

type RewardPolicy interface {
	PriceItems(itemTypes []entities.ItemType, requests []entities.BagItemRequest) ([]entities.BagItem, error)
	AgentDeliveryPoints() int64
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
