//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=vouchers_get_test
package vouchers_get

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
	Vouchers(ctx context.Context, holder entities.Holder) ([]entities.Voucher, error)
}
