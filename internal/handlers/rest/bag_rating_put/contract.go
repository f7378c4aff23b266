//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bag_rating_put_test
package bag_rating_put

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
	RateAgent(ctx context.Context, bagID, userID int64, stars int, comment string) (*entities.RatingResult, error)
}
