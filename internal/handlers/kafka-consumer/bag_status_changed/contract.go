//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bag_status_changed_test
package bag_status_changed

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
	ProcessBagStatusChange(ctx context.Context, event entities.BagStatusEvent) (*entities.Bag, error)
}
