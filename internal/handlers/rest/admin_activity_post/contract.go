//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_activity_post_test
package admin_activity_post

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
	AddActivity(ctx context.Context, activity entities.Activity) (*entities.Balance, error)
}
