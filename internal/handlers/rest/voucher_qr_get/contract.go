//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=voucher_qr_get_test
package voucher_qr_get

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
	QRCode(ctx context.Context, holder entities.Holder, code string) ([]byte, error)
}
