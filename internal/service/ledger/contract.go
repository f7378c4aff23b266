//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ledger_test
package ledger

import (
	"context"

	"recycling/internal/entities"
	"recycling/pkg/logger"
)

type Repository interface {
	InsertActivity(ctx context.Context, activity entities.Activity) (*entities.Activity, error)
	ListActivities(ctx context.Context, holder entities.Holder) ([]entities.Activity, error)
	SumActivities(ctx context.Context, holder entities.Holder) (int64, error)

	GetBalance(ctx context.Context, holder entities.Holder) (*entities.Balance, error)
	LockBalance(ctx context.Context, holder entities.Holder) (*entities.Balance, error)
	SetBalance(ctx context.Context, holder entities.Holder, points, rewards int64) (*entities.Balance, error)
	ApplyCredit(ctx context.Context, credit entities.Credit, points, rewards int64) (*entities.Balance, error)
	ApplyDebit(ctx context.Context, holder entities.Holder, amount, points, rewards int64) (*entities.Balance, error)
}

type RewardPolicy interface {
	RewardsFor(points int64) int64
	PointsFor(rewards int64) int64
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
