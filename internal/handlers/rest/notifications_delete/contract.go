//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notifications_delete_test
package notifications_delete

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
	Clear(ctx context.Context, recipient entities.Holder) (int64, error)
}
