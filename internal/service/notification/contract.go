//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"recycling/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, notification entities.Notification) (*entities.Notification, error)
	List(ctx context.Context, recipient entities.Holder, unreadOnly bool) ([]entities.Notification, error)
	MarkRead(ctx context.Context, recipient entities.Holder, id int64) error
	MarkAllRead(ctx context.Context, recipient entities.Holder) (int64, error)
	DeleteAll(ctx context.Context, recipient entities.Holder) (int64, error)
}
