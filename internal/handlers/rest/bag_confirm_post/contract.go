//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bag_confirm_post_test
package bag_confirm_post

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
	ConfirmBag(ctx context.Context, bagID, userID int64) (*entities.Bag, error)
}
