//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_reconcile_post_test
package admin_reconcile_post

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
	Reconcile(ctx context.Context, holder entities.Holder) (*entities.Balance, error)
}
