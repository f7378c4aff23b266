//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=voucher_use_post_test
package voucher_use_post

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
	Use(ctx context.Context, code string, branchID int64) (*entities.VoucherRedemption, error)
}
