//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=voucher_test
package voucher

import (
	"context"
	"time"

	"recycling/internal/entities"
	"recycling/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, voucher entities.Voucher) (*entities.Voucher, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	GetActiveForHolder(ctx context.Context, holder entities.Holder, now time.Time) (*entities.Voucher, error)
	GetByCode(ctx context.Context, code string) (*entities.Voucher, error)
	GetByCodeForUpdate(ctx context.Context, code string) (*entities.Voucher, error)
	ListForHolder(ctx context.Context, holder entities.Holder) ([]entities.Voucher, error)
	MarkUsed(ctx context.Context, id, branchID int64, usedAt time.Time) (*entities.Voucher, error)
	CreateUsage(ctx context.Context, usage entities.VoucherUsage) (*entities.VoucherUsage, error)
	ListUsagesForHolder(ctx context.Context, holder entities.Holder) ([]entities.VoucherUsage, error)
	ListExpiredUnnotified(ctx context.Context, now time.Time, limit int) ([]entities.Voucher, error)
	MarkExpiryNotified(ctx context.Context, id int64) (bool, error)
}

type BranchRepository interface {
	GetBranch(ctx context.Context, id int64) (*entities.Branch, error)
}

type Ledger interface {
	Lock(ctx context.Context, holder entities.Holder) (*entities.Balance, error)
	Debit(ctx context.Context, holder entities.Holder, amount int64, title string) (*entities.Balance, error)
}

type CodeGenerator interface {
	Generate() (string, error)
}

type QRRenderer interface {
	PNG(payload string) ([]byte, error)
}

type Notifier interface {
	Notify(ctx context.Context, recipient entities.Holder, title, message string, kind entities.NotificationType) error
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
