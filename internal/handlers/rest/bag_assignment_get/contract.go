//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bag_assignment_get_test
package bag_assignment_get

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
	ForBag(ctx context.Context, bagID int64, requester entities.Identity) (*entities.Assignment, error)
}
