//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bag_test
package bag

import (
	"context"

	"recycling/internal/entities"
	"recycling/pkg/logger"
)

type Repository interface {
	ItemTypes(ctx context.Context) ([]entities.ItemType, error)
	Create(ctx context.Context, bag entities.Bag) (*entities.Bag, error)
	GetByID(ctx context.Context, id int64) (*entities.Bag, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Bag, error)
	HasOpenBag(ctx context.Context, userID int64) (bool, error)
	GetCurrentForUser(ctx context.Context, userID int64) (*entities.Bag, error)
	ListForUser(ctx context.Context, userID int64, activeOnly bool) ([]entities.Bag, error)
	UpdateStatus(ctx context.Context, id int64, status entities.BagStatus) error
}

type AssignmentRepository interface {
	Create(ctx context.Context, assignmentModify entities.AssignmentModify) (*entities.Assignment, error)
	GetLatestByBagID(ctx context.Context, bagID int64) (*entities.Assignment, error)
	Update(ctx context.Context, assignmentModify entities.AssignmentModify) (*entities.Assignment, error)
}

type AgentRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Agent, error)
}

type RatingRepository interface {
	Upsert(ctx context.Context, rating entities.Rating) (*entities.Rating, bool, error)
	RecalculateAgentAverage(ctx context.Context, agentID int64) (float64, error)
}

type Ledger interface {
	AddActivity(ctx context.Context, activity entities.Activity) (*entities.Balance, error)
	Reconcile(ctx context.Context, holder entities.Holder) (*entities.Balance, error)
}

type Matcher interface {
	AssignBag(ctx context.Context, bagID int64) (*entities.Assignment, error)
}

type Notifier interface {
	Notify(ctx context.Context, recipient entities.Holder, title, message string, kind entities.NotificationType) error
}

type EventPublisher interface {
	PublishBagStatus(ctx context.Context, bagID int64, status entities.BagStatus) error
}

type RewardPolicy interface {
	PriceItems(itemTypes []entities.ItemType, requests []entities.BagItemRequest) ([]entities.BagItem, error)
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
