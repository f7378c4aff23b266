//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"

	"recycling/internal/entities"
)

type BagRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Bag, error)
}

type Matcher interface {
	AssignBag(ctx context.Context, bagID int64) (*entities.Assignment, error)
}

type Ledger interface {
	Reconcile(ctx context.Context, holder entities.Holder) (*entities.Balance, error)
}

type (
	ExecuteFn      func(ctx context.Context, bag *entities.Bag) error
	HandlerFactory interface {
		GetHandler(status entities.BagStatus) (ExecuteFn, error)
	}
)
