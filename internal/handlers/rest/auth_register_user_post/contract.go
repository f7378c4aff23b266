//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_register_user_post_test
package auth_register_user_post

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
	RegisterUser(ctx context.Context, userModify entities.UserModify) (*entities.User, error)
}
