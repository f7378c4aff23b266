//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bag_post_test
package bag_post

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
	PlaceBag(
		ctx context.Context,
		userID int64,
		items []entities.BagItemRequest,
		latitude, longitude *float64,
	) (*entities.BagOverview, error)
}
