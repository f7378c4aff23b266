package matcher

import (
	"context"
	"errors"
	"fmt"

	"recycling/internal/entities"
	"recycling/internal/service/assignment"
	"recycling/pkg/logger"
)

const (
	resultOffered = "offered"
	resultReused  = "reused"
	resultNoAgent = "no_agent"
)

// Matcher подбирает агента для ожидающего заказа: тот же регион, агент на линии и одобрен,
// минимум активных назначений. Повторный вызов для того же заказа ничего не меняет.
type Matcher struct {
	log        serviceLogger
	repository Repository
	bags       BagRepository
	users      UserRepository
	notifier   Notifier
	events     EventPublisher
	txManager  TxManager
}

func New(
	log serviceLogger,
	repository Repository,
	bags BagRepository,
	users UserRepository,
	notifier Notifier,
	events EventPublisher,
	txManager TxManager,
) *Matcher {
	return &Matcher{
		log:        log.With(logger.NewField("service", "matcher")),
		repository: repository,
		bags:       bags,
		users:      users,
		notifier:   notifier,
		events:     events,
		txManager:  txManager,
	}
}

func (s *Matcher) AssignBag(ctx context.Context, bagID int64) (*entities.Assignment, error) {
	if bagID <= 0 {
		return nil, ErrInvalidBagID
	}

	var (
		result  *entities.Assignment
		offered bool
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		bag, err := s.bags.GetByIDForUpdate(ctx, bagID)
		if err != nil {
			return fmt.Errorf("get bag: %w", err)
		}
		if bag.Status != entities.BagPending && bag.Status != entities.BagAssigned {
			return ErrBagNotAssignable
		}

		active, err := s.repository.GetActiveByBagID(ctx, bagID)
		if err != nil && !errors.Is(err, assignment.ErrAssignmentNotFound) {
			return fmt.Errorf("get active assignment: %w", err)
		}

		if active != nil && active.OfferedAgentID != nil {
			result = active
			if bag.Status == entities.BagPending && active.Status == entities.AssignmentPending {
				err = s.bags.UpdateStatus(ctx, bagID, entities.BagAssigned)
				if err != nil {
					return fmt.Errorf("update bag status: %w", err)
				}
			}
			return nil
		}

		owner, err := s.users.GetByID(ctx, bag.UserID)
		if err != nil {
			return fmt.Errorf("get bag owner: %w", err)
		}

		var releasedBy *int64
		if active != nil {
			releasedBy = active.ReleasedByAgentID
		}
		agent, err := s.findAgent(ctx, owner.Governorate, releasedBy)
		if err != nil {
			return fmt.Errorf("find agent for assignment: %w", err)
		}

		if active != nil {
			result, err = s.repository.Update(ctx, entities.AssignmentModify{
				ID:             &active.ID,
				OfferedAgentID: &agent.ID,
			})
			if err != nil {
				return fmt.Errorf("offer assignment: %w", err)
			}
		} else {
			pending := entities.AssignmentPending
			result, err = s.repository.Create(ctx, entities.AssignmentModify{
				BagID:          &bagID,
				OfferedAgentID: &agent.ID,
				Status:         &pending,
				UserPhone:      &owner.Phone,
			})
			if err != nil {
				return fmt.Errorf("create assignment: %w", err)
			}
		}

		if bag.Status != entities.BagAssigned {
			err = s.bags.UpdateStatus(ctx, bagID, entities.BagAssigned)
			if err != nil {
				return fmt.Errorf("update bag status: %w", err)
			}
		}

		err = s.notifier.Notify(ctx, agent.Holder(),
			"New order available",
			fmt.Sprintf("Bag #%d in %s is waiting for pickup.", bagID, owner.Governorate),
			entities.NotificationOrder,
		)
		if err != nil {
			return fmt.Errorf("notify agent: %w", err)
		}

		offered = true
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNoAvailableAgents) {
			MatchAttemptsTotal.WithLabelValues(resultNoAgent).Inc()
		}
		return nil, err
	}

	if !offered {
		MatchAttemptsTotal.WithLabelValues(resultReused).Inc()
		return result, nil
	}

	MatchAttemptsTotal.WithLabelValues(resultOffered).Inc()
	if err := s.events.PublishBagStatus(ctx, bagID, entities.BagAssigned); err != nil {
		s.log.Warn("publish bag status event",
			logger.NewField("bag", bagID),
			logger.NewField("error", err),
		)
	}
	return result, nil
}

// AssignPendingBags повторяет подбор для заказов, которым агент не нашёлся сразу.
// Возвращает число заказов, получивших предложение.
func (s *Matcher) AssignPendingBags(ctx context.Context, limit int) (int, error) {
	ids, err := s.bags.ListPendingIDs(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("list pending bags: %w", err)
	}

	assigned := 0
	for _, id := range ids {
		if ctx.Err() != nil {
			return assigned, ctx.Err()
		}

		_, err := s.AssignBag(ctx, id)
		switch {
		case err == nil:
			assigned++
		case errors.Is(err, ErrNoAvailableAgents), errors.Is(err, ErrBagNotAssignable):
		default:
			s.log.Warn("assign pending bag",
				logger.NewField("bag", id),
				logger.NewField("error", err),
			)
		}
	}
	return assigned, nil
}

// findAgent не предлагает заказ агенту, который только что от него отказался.
// Если в регионе больше никого нет, заказ всё же уходит ему: иначе он зависнет.
func (s *Matcher) findAgent(ctx context.Context, governorate string, releasedBy *int64) (*entities.Agent, error) {
	agent, err := s.repository.FindAgentForAssignment(ctx, governorate, releasedBy)
	if errors.Is(err, ErrNoAvailableAgents) && releasedBy != nil {
		return s.repository.FindAgentForAssignment(ctx, governorate, nil)
	}
	return agent, err
}
