//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=store_test
package store

import (
	"context"

	"recycling/internal/entities"
)

type Repository interface {
	ListStores(ctx context.Context) ([]entities.Store, error)
	GetBranch(ctx context.Context, id int64) (*entities.Branch, error)
}
