//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bags_get_test
package bags_get

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
	Bags(ctx context.Context, userID int64, activeOnly bool) ([]entities.Bag, error)
}
