//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=voucher_active_get_test
package voucher_active_get

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
	ActiveVoucher(ctx context.Context, holder entities.Holder) (*entities.Voucher, error)
}
