package bag_status_handle

import (
	"context"
	"errors"
	"fmt"

	"recycling/internal/entities"
	"recycling/internal/service/dispatch"
	"recycling/internal/service/matcher"
)

type StatusHandlerFactory struct {
	matcher dispatch.Matcher
	ledger  dispatch.Ledger
}

func NewStatusHandlerFactory(matcher dispatch.Matcher, ledger dispatch.Ledger) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		matcher: matcher,
		ledger:  ledger,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.BagStatus) (dispatch.ExecuteFn, error) {
	switch status {
	case entities.BagPending:
		return f.pendingHandler, nil
	case entities.BagDelivered:
		return f.deliveredHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", dispatch.ErrUndefinedStatus, status)
	}
}

// pendingHandler заказ без агента: новый или освобождённый агентом. Если свободных агентов нет,
// заказ подберёт задача pending_bags.
func (f *StatusHandlerFactory) pendingHandler(ctx context.Context, bag *entities.Bag) error {
	_, err := f.matcher.AssignBag(ctx, bag.ID)
	if err != nil {
		if errors.Is(err, matcher.ErrNoAvailableAgents) || errors.Is(err, matcher.ErrBagNotAssignable) {
			return nil
		}
		return fmt.Errorf("assign agent for pending bag %d: %w", bag.ID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) deliveredHandler(ctx context.Context, bag *entities.Bag) error {
	_, err := f.ledger.Reconcile(ctx, entities.Holder{Kind: entities.HolderUser, ID: bag.UserID})
	if err != nil {
		return fmt.Errorf("reconcile owner balance for delivered bag %d: %w", bag.ID, err)
	}
	return nil
}
