package assignment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"recycling/internal/entities"
	"recycling/pkg/logger"
)

type Assignment struct {
	log        serviceLogger
	repository Repository
	bags       BagRepository
	users      UserRepository
	agents     AgentRepository
	ledger     Ledger
	notifier   Notifier
	events     EventPublisher
	policy     RewardPolicy
	txManager  TxManager
}

func New(
	log serviceLogger,
	repository Repository,
	bags BagRepository,
	users UserRepository,
	agents AgentRepository,
	ledger Ledger,
	notifier Notifier,
	events EventPublisher,
	policy RewardPolicy,
	txManager TxManager,
) *Assignment {
	return &Assignment{
		log:        log.With(logger.NewField("service", "assignment")),
		repository: repository,
		bags:       bags,
		users:      users,
		agents:     agents,
		ledger:     ledger,
		notifier:   notifier,
		events:     events,
		policy:     policy,
		txManager:  txManager,
	}
}

// Accept агент берёт заказ: одобрен, нет другого заказа в пути, тот же регион.
func (s *Assignment) Accept(ctx context.Context, assignmentID, agentID int64) (*entities.Assignment, error) {
	if assignmentID <= 0 {
		return nil, ErrInvalidAssignmentID
	}

	var updated *entities.Assignment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		agent, err := s.agents.GetByID(ctx, agentID)
		if err != nil {
			return fmt.Errorf("get agent: %w", err)
		}
		if agent.Approval != entities.AgentApproved {
			return ErrAgentNotApproved
		}

		current, err := s.repository.GetByIDForUpdate(ctx, assignmentID)
		if err != nil {
			return fmt.Errorf("get assignment: %w", err)
		}
		if err = checkTransition(current.Status, entities.AssignmentAccepted); err != nil {
			return err
		}
		if current.OfferedAgentID != nil && *current.OfferedAgentID != agentID {
			return ErrOfferedToAnotherAgent
		}

		inTransit, err := s.repository.CountInTransitForAgent(ctx, agentID)
		if err != nil {
			return fmt.Errorf("count agent deliveries: %w", err)
		}
		if inTransit > 0 {
			return ErrAgentBusy
		}

		bag, err := s.bags.GetByID(ctx, current.BagID)
		if err != nil {
			return fmt.Errorf("get bag: %w", err)
		}
		owner, err := s.users.GetByID(ctx, bag.UserID)
		if err != nil {
			return fmt.Errorf("get bag owner: %w", err)
		}
		if !sameRegion(owner.Governorate, agent.Governorate) {
			return ErrRegionMismatch
		}

		now := time.Now().UTC()
		updated, err = s.move(ctx, current, entities.AssignmentModify{
			AgentID:        &agentID,
			OfferedAgentID: &agentID,
			UserPhone:      &owner.Phone,
			AgentPhone:     &agent.Phone,
			AcceptedAt:     &now,
		}, entities.AssignmentAccepted)
		if err != nil {
			return err
		}

		_, err = s.ledger.AddActivity(ctx, entities.Activity{
			Holder: agent.Holder(),
			Title:  fmt.Sprintf("Accepted bag #%d", bag.ID),
			Type:   entities.ActivityAccepted,
		})
		if err != nil {
			return fmt.Errorf("record activity: %w", err)
		}

		return s.notify(ctx, owner.Holder(), "Order accepted",
			fmt.Sprintf("%s accepted your bag #%d and will contact you at pickup.", agent.FullName(), bag.ID))
	})
	if err != nil {
		return nil, err
	}

	s.afterCommit(ctx, entities.AssignmentPending, updated)
	return updated, nil
}

func (s *Assignment) StartDelivery(ctx context.Context, assignmentID, agentID int64) (*entities.Assignment, error) {
	if assignmentID <= 0 {
		return nil, ErrInvalidAssignmentID
	}

	var (
		updated *entities.Assignment
		from    entities.AssignmentStatus
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.lockHeld(ctx, assignmentID, agentID)
		if err != nil {
			return err
		}
		from = current.Status

		now := time.Now().UTC()
		updated, err = s.move(ctx, current, entities.AssignmentModify{StartedAt: &now}, entities.AssignmentInTransit)
		if err != nil {
			return err
		}

		return s.notifyBagOwner(ctx, current.BagID, "Pickup started",
			fmt.Sprintf("Your bag #%d is on its way to the recycling center.", current.BagID))
	})
	if err != nil {
		return nil, err
	}

	s.afterCommit(ctx, from, updated)
	return updated, nil
}

// Verify агент сверяет содержимое при получении. С позициями заказ пересчитывается и уходит
// в путь, с одним только отчётом о расхождении заказ отклоняется.
func (s *Assignment) Verify(
	ctx context.Context,
	assignmentID, agentID int64,
	items []entities.BagItemRequest,
	discrepancyReport string,
) (*entities.Assignment, error) {
	if assignmentID <= 0 {
		return nil, ErrInvalidAssignmentID
	}
	discrepancyReport = strings.TrimSpace(discrepancyReport)
	if len(items) == 0 && discrepancyReport == "" {
		return nil, ErrVerificationInputRequired
	}

	var (
		updated *entities.Assignment
		from    entities.AssignmentStatus
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.lockHeld(ctx, assignmentID, agentID)
		if err != nil {
			return err
		}
		from = current.Status
		if current.Status != entities.AssignmentAccepted {
			return fmt.Errorf("%w: verification requires accepted, got %s", ErrInvalidTransition, current.Status)
		}

		bag, err := s.bags.GetByID(ctx, current.BagID)
		if err != nil {
			return fmt.Errorf("get bag: %w", err)
		}

		if len(items) == 0 {
			updated, err = s.move(ctx, current, entities.AssignmentModify{
				DiscrepancyReport: &discrepancyReport,
				RejectionReason:   &discrepancyReport,
			}, entities.AssignmentRejected)
			if err != nil {
				return err
			}

			_, err = s.ledger.AddActivity(ctx, entities.Activity{
				Holder: entities.Holder{Kind: entities.HolderUser, ID: bag.UserID},
				Title:  fmt.Sprintf("Bag #%d rejected", bag.ID),
				Type:   entities.ActivityRejected,
			})
			if err != nil {
				return fmt.Errorf("record activity: %w", err)
			}

			return s.notify(ctx, entities.Holder{Kind: entities.HolderUser, ID: bag.UserID}, "Bag rejected",
				fmt.Sprintf("Your bag #%d was rejected during verification: %s", bag.ID, discrepancyReport))
		}

		itemTypes, err := s.bags.ItemTypes(ctx)
		if err != nil {
			return fmt.Errorf("get item types: %w", err)
		}
		priced, err := s.policy.PriceItems(itemTypes, items)
		if err != nil {
			return err
		}
		err = s.bags.ReplaceItems(ctx, bag.ID, priced)
		if err != nil {
			return fmt.Errorf("replace bag items: %w", err)
		}

		verified := entities.Bag{Items: priced}
		now := time.Now().UTC()
		modify := entities.AssignmentModify{StartedAt: &now}
		if discrepancyReport != "" {
			modify.DiscrepancyReport = &discrepancyReport
		}
		updated, err = s.move(ctx, current, modify, entities.AssignmentInTransit)
		if err != nil {
			return err
		}

		return s.notify(ctx, entities.Holder{Kind: entities.HolderUser, ID: bag.UserID}, "Bag verified",
			fmt.Sprintf("Your bag #%d was verified: %d points on delivery.", bag.ID, verified.TotalPoints()))
	})
	if err != nil {
		return nil, err
	}

	s.afterCommit(ctx, from, updated)
	return updated, nil
}

// Cancel агент отказывается от принятого заказа: назначение возвращается в ожидание без агента.
func (s *Assignment) Cancel(ctx context.Context, assignmentID, agentID int64, reason string) (*entities.Assignment, error) {
	if assignmentID <= 0 {
		return nil, ErrInvalidAssignmentID
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = "Canceled by agent"
	}

	var (
		updated *entities.Assignment
		from    entities.AssignmentStatus
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.lockHeld(ctx, assignmentID, agentID)
		if err != nil {
			return err
		}
		from = current.Status

		updated, err = s.move(ctx, current, entities.AssignmentModify{
			ClearAgent:        true,
			CancelReason:      &reason,
			ReleasedByAgentID: &agentID,
		}, entities.AssignmentPending)
		if err != nil {
			return err
		}

		err = s.notifyBagOwner(ctx, current.BagID, "Agent canceled pickup",
			fmt.Sprintf("The agent canceled pickup of bag #%d. We are looking for another agent.", current.BagID))
		if err != nil {
			return err
		}

		return s.notify(ctx, entities.Holder{Kind: entities.HolderAgent, ID: agentID}, "Order released",
			fmt.Sprintf("You released bag #%d: %s", current.BagID, reason))
	})
	if err != nil {
		return nil, err
	}

	s.afterCommit(ctx, from, updated)
	return updated, nil
}

// Reject отказ от заказа в пути. Причина обязательна.
func (s *Assignment) Reject(ctx context.Context, assignmentID, agentID int64, reason string) (*entities.Assignment, error) {
	if assignmentID <= 0 {
		return nil, ErrInvalidAssignmentID
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrReasonRequired
	}

	var updated *entities.Assignment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.lockHeld(ctx, assignmentID, agentID)
		if err != nil {
			return err
		}
		if current.Status != entities.AssignmentInTransit {
			return fmt.Errorf("%w: reject requires in_transit, got %s", ErrInvalidTransition, current.Status)
		}

		updated, err = s.move(ctx, current, entities.AssignmentModify{RejectionReason: &reason}, entities.AssignmentRejected)
		if err != nil {
			return err
		}

		bag, err := s.bags.GetByID(ctx, current.BagID)
		if err != nil {
			return fmt.Errorf("get bag: %w", err)
		}
		owner := entities.Holder{Kind: entities.HolderUser, ID: bag.UserID}

		_, err = s.ledger.AddActivity(ctx, entities.Activity{
			Holder: owner,
			Title:  fmt.Sprintf("Bag #%d rejected", bag.ID),
			Type:   entities.ActivityRejected,
		})
		if err != nil {
			return fmt.Errorf("record activity: %w", err)
		}

		err = s.notify(ctx, owner, "Bag rejected",
			fmt.Sprintf("Your bag #%d was rejected: %s", bag.ID, reason))
		if err != nil {
			return err
		}
		return s.notify(ctx, entities.Holder{Kind: entities.HolderAgent, ID: agentID}, "Order rejected",
			fmt.Sprintf("You rejected bag #%d.", bag.ID))
	})
	if err != nil {
		return nil, err
	}

	s.afterCommit(ctx, entities.AssignmentInTransit, updated)
	return updated, nil
}

// Complete доставка завершена: покупатель получает баллы за позиции, агент фиксированный бонус.
func (s *Assignment) Complete(ctx context.Context, assignmentID, agentID int64) (*entities.Assignment, error) {
	if assignmentID <= 0 {
		return nil, ErrInvalidAssignmentID
	}

	var (
		updated *entities.Assignment
		from    entities.AssignmentStatus
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.lockHeld(ctx, assignmentID, agentID)
		if err != nil {
			return err
		}
		from = current.Status

		now := time.Now().UTC()
		updated, err = s.move(ctx, current, entities.AssignmentModify{CompletedAt: &now}, entities.AssignmentDelivered)
		if err != nil {
			return err
		}

		bag, err := s.bags.GetByID(ctx, current.BagID)
		if err != nil {
			return fmt.Errorf("get bag: %w", err)
		}
		owner := entities.Holder{Kind: entities.HolderUser, ID: bag.UserID}
		agent := entities.Holder{Kind: entities.HolderAgent, ID: agentID}
		userPoints := bag.TotalPoints()
		agentPoints := s.policy.AgentDeliveryPoints()

		_, err = s.ledger.Credit(ctx, entities.Credit{
			Holder: owner,
			Title:  fmt.Sprintf("Bag #%d delivered", bag.ID),
			Type:   entities.ActivityDelivered,
			Points: userPoints,
			CO2:    bag.TotalCO2(),
			Items:  bag.TotalQuantity(),
		})
		if err != nil {
			return fmt.Errorf("credit user: %w", err)
		}

		_, err = s.ledger.Credit(ctx, entities.Credit{
			Holder:    agent,
			Title:     fmt.Sprintf("Delivered bag #%d", bag.ID),
			Type:      entities.ActivityDelivered,
			Points:    agentPoints,
			Delivered: 1,
		})
		if err != nil {
			return fmt.Errorf("credit agent: %w", err)
		}

		err = s.notify(ctx, owner, "Bag delivered",
			fmt.Sprintf("Your bag #%d was delivered. You earned %d points.", bag.ID, userPoints))
		if err != nil {
			return err
		}
		return s.notify(ctx, agent, "Delivery completed",
			fmt.Sprintf("Bag #%d delivered. You earned %d points.", bag.ID, agentPoints))
	})
	if err != nil {
		return nil, err
	}

	s.afterCommit(ctx, from, updated)
	return updated, nil
}

// ForBag последнее назначение заказа. Видно только владельцу заказа и агенту назначения.
func (s *Assignment) ForBag(ctx context.Context, bagID int64, requester entities.Identity) (*entities.Assignment, error) {
	latest, err := s.repository.GetLatestByBagID(ctx, bagID)
	if err != nil {
		return nil, fmt.Errorf("get assignment by bag: %w", err)
	}

	switch requester.Holder.Kind {
	case entities.HolderUser:
		bag, err := s.bags.GetByID(ctx, bagID)
		if err != nil {
			return nil, fmt.Errorf("get bag: %w", err)
		}
		if bag.UserID != requester.Holder.ID {
			return nil, ErrForbidden
		}
	case entities.HolderAgent:
		offered := latest.OfferedAgentID != nil && *latest.OfferedAgentID == requester.Holder.ID
		if !offered && !latest.IsHeldBy(requester.Holder.ID) {
			return nil, ErrForbidden
		}
	default:
		return nil, ErrForbidden
	}
	return latest, nil
}

func (s *Assignment) AgentBoard(ctx context.Context, agentID int64) (*entities.AgentBoard, error) {
	agent, err := s.agents.GetByID(ctx, agentID)
	if err != nil {
		return nil, fmt.Errorf("get agent: %w", err)
	}

	offered, err := s.repository.ListOffered(ctx, agentID, agent.Governorate)
	if err != nil {
		return nil, fmt.Errorf("list offered assignments: %w", err)
	}
	active, err := s.repository.ListActiveForAgent(ctx, agentID)
	if err != nil {
		return nil, fmt.Errorf("list active assignments: %w", err)
	}

	return &entities.AgentBoard{
		Offered: offered,
		Active:  active,
	}, nil
}

func (s *Assignment) AgentHistory(ctx context.Context, agentID int64) ([]entities.Assignment, error) {
	history, err := s.repository.ListHistoryForAgent(ctx, agentID)
	if err != nil {
		return nil, fmt.Errorf("list assignment history: %w", err)
	}
	return history, nil
}

func (s *Assignment) lockHeld(ctx context.Context, assignmentID, agentID int64) (*entities.Assignment, error) {
	current, err := s.repository.GetByIDForUpdate(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	if !current.IsHeldBy(agentID) {
		return nil, ErrNotAssignedAgent
	}
	return current, nil
}

// move переводит назначение в to и синхронизирует статус заказа.
func (s *Assignment) move(
	ctx context.Context,
	current *entities.Assignment,
	modify entities.AssignmentModify,
	to entities.AssignmentStatus,
) (*entities.Assignment, error) {
	if err := checkTransition(current.Status, to); err != nil {
		return nil, err
	}

	modify.ID = &current.ID
	modify.Status = &to
	updated, err := s.repository.Update(ctx, modify)
	if err != nil {
		return nil, fmt.Errorf("update assignment: %w", err)
	}

	err = s.bags.UpdateStatus(ctx, updated.BagID, BagStatusFor(updated.Status, updated.OfferedAgentID != nil))
	if err != nil {
		return nil, fmt.Errorf("update bag status: %w", err)
	}
	return updated, nil
}

func (s *Assignment) notifyBagOwner(ctx context.Context, bagID int64, title, message string) error {
	bag, err := s.bags.GetByID(ctx, bagID)
	if err != nil {
		return fmt.Errorf("get bag: %w", err)
	}
	return s.notify(ctx, entities.Holder{Kind: entities.HolderUser, ID: bag.UserID}, title, message)
}

func (s *Assignment) notify(ctx context.Context, recipient entities.Holder, title, message string) error {
	err := s.notifier.Notify(ctx, recipient, title, message, entities.NotificationOrder)
	if err != nil {
		return fmt.Errorf("notify %s: %w", recipient.Kind, err)
	}
	return nil
}

// afterCommit метрика перехода и событие в Kafka. Ошибка публикации не откатывает переход.
func (s *Assignment) afterCommit(ctx context.Context, from entities.AssignmentStatus, updated *entities.Assignment) {
	TransitionsTotal.WithLabelValues(from.String(), updated.Status.String()).Inc()

	status := BagStatusFor(updated.Status, updated.OfferedAgentID != nil)
	if err := s.events.PublishBagStatus(ctx, updated.BagID, status); err != nil {
		s.log.Warn("publish bag status event",
			logger.NewField("bag", updated.BagID),
			logger.NewField("status", status.String()),
			logger.NewField("error", err),
		)
	}
}

func sameRegion(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
