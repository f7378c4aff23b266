//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"recycling/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.User, error)
	Update(ctx context.Context, userModify entities.UserModify) (*entities.User, error)
}
