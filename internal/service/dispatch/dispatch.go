package dispatch

import (
	"context"
	"errors"
	"fmt"

	"recycling/internal/entities"
)

// Service реагирует на события смены статуса заказа из Kafka.
type Service struct {
	bags          BagRepository
	statusFactory HandlerFactory
}

func New(bags BagRepository, statusFactory HandlerFactory) *Service {
	return &Service{
		bags:          bags,
		statusFactory: statusFactory,
	}
}

// ProcessBagStatusChange перечитывает заказ и запускает обработчик его текущего статуса.
// Устаревшее событие возвращает ErrStatusMismatch вместе с актуальным заказом.
func (s *Service) ProcessBagStatusChange(ctx context.Context, event entities.BagStatusEvent) (*entities.Bag, error) {
	if event.BagID <= 0 || event.Status == "" {
		return nil, ErrInvalidEvent
	}

	bag, err := s.bags.GetByID(ctx, event.BagID)
	if err != nil {
		return nil, fmt.Errorf("get bag: %w", err)
	}
	if bag.Status != event.Status {
		return bag, fmt.Errorf("%w: event %s, current %s", ErrStatusMismatch, event.Status, bag.Status)
	}

	executeFn, err := s.statusFactory.GetHandler(bag.Status)
	if err != nil {
		// статусы без обработчика пропускаем
		if errors.Is(err, ErrUndefinedStatus) {
			return bag, nil
		}
		return bag, err
	}

	if err := executeFn(ctx, bag); err != nil {
		return nil, err
	}
	return bag, nil
}
