package bag

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"recycling/internal/entities"
	"recycling/internal/service/assignment"
	"recycling/internal/service/matcher"
	"recycling/pkg/logger"
)

const customerCancelReason = "Canceled by customer"

type Bag struct {
	log         serviceLogger
	repository  Repository
	assignments AssignmentRepository
	agents      AgentRepository
	ratings     RatingRepository
	ledger      Ledger
	matcher     Matcher
	notifier    Notifier
	events      EventPublisher
	policy      RewardPolicy
	txManager   TxManager
}

func New(
	log serviceLogger,
	repository Repository,
	assignments AssignmentRepository,
	agents AgentRepository,
	ratings RatingRepository,
	ledger Ledger,
	matcher Matcher,
	notifier Notifier,
	events EventPublisher,
	policy RewardPolicy,
	txManager TxManager,
) *Bag {
	return &Bag{
		log:         log.With(logger.NewField("service", "bag")),
		repository:  repository,
		assignments: assignments,
		agents:      agents,
		ratings:     ratings,
		ledger:      ledger,
		matcher:     matcher,
		notifier:    notifier,
		events:      events,
		policy:      policy,
		txManager:   txManager,
	}
}

func (s *Bag) ItemTypes(ctx context.Context) ([]entities.ItemType, error) {
	itemTypes, err := s.repository.ItemTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("get item types: %w", err)
	}
	return itemTypes, nil
}

// PlaceBag создаёт заказ с позициями и ожидающим назначением, затем пытается сразу подобрать агента.
// Если агента нет, заказ остаётся в ожидании до следующего прохода задачи pending_bags.
func (s *Bag) PlaceBag(
	ctx context.Context,
	userID int64,
	items []entities.BagItemRequest,
	latitude, longitude *float64,
) (*entities.BagOverview, error) {
	if !isValidLocation(latitude, longitude) {
		return nil, ErrInvalidLocation
	}

	var placed *entities.Bag
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		open, err := s.repository.HasOpenBag(ctx, userID)
		if err != nil {
			return fmt.Errorf("check open bag: %w", err)
		}
		if open {
			return ErrActiveBagExists
		}

		itemTypes, err := s.repository.ItemTypes(ctx)
		if err != nil {
			return fmt.Errorf("get item types: %w", err)
		}
		priced, err := s.policy.PriceItems(itemTypes, items)
		if err != nil {
			return err
		}

		placed, err = s.repository.Create(ctx, entities.Bag{
			UserID:    userID,
			Status:    entities.BagPending,
			Latitude:  latitude,
			Longitude: longitude,
			Items:     priced,
		})
		if err != nil {
			return fmt.Errorf("create bag: %w", err)
		}

		pending := entities.AssignmentPending
		_, err = s.assignments.Create(ctx, entities.AssignmentModify{
			BagID:  &placed.ID,
			Status: &pending,
		})
		if err != nil {
			return fmt.Errorf("create assignment: %w", err)
		}

		owner := entities.Holder{Kind: entities.HolderUser, ID: userID}
		_, err = s.ledger.AddActivity(ctx, entities.Activity{
			Holder: owner,
			Title:  fmt.Sprintf("Placed bag #%d", placed.ID),
			Type:   entities.ActivityPlaced,
		})
		if err != nil {
			return fmt.Errorf("record activity: %w", err)
		}

		return s.notify(ctx, owner, "Order placed",
			fmt.Sprintf("Bag #%d with %d items placed. We are looking for an agent.", placed.ID, placed.TotalQuantity()))
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, placed.ID, entities.BagPending)

	overview := &entities.BagOverview{Bag: *placed}
	offered, err := s.matcher.AssignBag(ctx, placed.ID)
	switch {
	case err == nil:
		overview.Bag.Status = entities.BagAssigned
		overview.Assignment = offered
	case errors.Is(err, matcher.ErrNoAvailableAgents):
		s.log.Info("no agent for new bag", logger.NewField("bag", placed.ID))
	default:
		s.log.Warn("assign new bag", logger.NewField("bag", placed.ID), logger.NewField("error", err))
	}

	return overview, nil
}

// CurrentBag последний незавершённый или отклонённый заказ с назначением и агентом.
func (s *Bag) CurrentBag(ctx context.Context, userID int64) (*entities.BagOverview, error) {
	current, err := s.repository.GetCurrentForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get current bag: %w", err)
	}

	overview := &entities.BagOverview{Bag: *current}
	latest, err := s.assignments.GetLatestByBagID(ctx, current.ID)
	if err != nil {
		if errors.Is(err, assignment.ErrAssignmentNotFound) {
			return overview, nil
		}
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	overview.Assignment = latest
	overview.RejectionReason = latest.RejectionReason

	if latest.AgentID != nil {
		agent, err := s.agents.GetByID(ctx, *latest.AgentID)
		if err != nil {
			return nil, fmt.Errorf("get agent: %w", err)
		}
		overview.Agent = &entities.AgentSummary{
			ID:            agent.ID,
			Name:          agent.FullName(),
			Email:         agent.Email,
			Phone:         agent.Phone,
			AverageRating: agent.AverageRating,
		}
	}

	return overview, nil
}

func (s *Bag) Bags(ctx context.Context, userID int64, activeOnly bool) ([]entities.Bag, error) {
	bags, err := s.repository.ListForUser(ctx, userID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list bags: %w", err)
	}
	return bags, nil
}

// CancelBag отмена покупателем, пока агент не взял заказ в работу.
func (s *Bag) CancelBag(ctx context.Context, bagID, userID int64) (*entities.Bag, error) {
	if bagID <= 0 {
		return nil, ErrInvalidBagID
	}

	var (
		canceled *entities.Bag
		from     entities.AssignmentStatus
		moved    bool
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.lockOwned(ctx, bagID, userID)
		if err != nil {
			return err
		}
		switch current.Status {
		case entities.BagPending, entities.BagAssigned, entities.BagRejected:
		default:
			return fmt.Errorf("%w: status %s", ErrBagNotCancelable, current.Status)
		}

		var offeredAgentID *int64
		latest, err := s.assignments.GetLatestByBagID(ctx, bagID)
		switch {
		case err == nil:
			if assignment.CanTransition(latest.Status, entities.AssignmentCanceled) {
				status := entities.AssignmentCanceled
				reason := customerCancelReason
				_, err = s.assignments.Update(ctx, entities.AssignmentModify{
					ID:           &latest.ID,
					Status:       &status,
					CancelReason: &reason,
				})
				if err != nil {
					return fmt.Errorf("cancel assignment: %w", err)
				}
				from, moved = latest.Status, true
				offeredAgentID = latest.OfferedAgentID
			}
		case errors.Is(err, assignment.ErrAssignmentNotFound):
		default:
			return fmt.Errorf("get assignment: %w", err)
		}

		err = s.repository.UpdateStatus(ctx, bagID, entities.BagCanceled)
		if err != nil {
			return fmt.Errorf("update bag status: %w", err)
		}
		current.Status = entities.BagCanceled
		canceled = current

		owner := entities.Holder{Kind: entities.HolderUser, ID: userID}
		_, err = s.ledger.AddActivity(ctx, entities.Activity{
			Holder: owner,
			Title:  fmt.Sprintf("Canceled bag #%d", bagID),
			Type:   entities.ActivityCanceled,
		})
		if err != nil {
			return fmt.Errorf("record activity: %w", err)
		}

		err = s.notify(ctx, owner, "Order canceled", fmt.Sprintf("You canceled bag #%d.", bagID))
		if err != nil {
			return err
		}
		if offeredAgentID != nil {
			return s.notify(ctx, entities.Holder{Kind: entities.HolderAgent, ID: *offeredAgentID}, "Order canceled",
				fmt.Sprintf("The customer canceled bag #%d.", bagID))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if moved {
		assignment.TransitionsTotal.WithLabelValues(from.String(), entities.AssignmentCanceled.String()).Inc()
	}
	s.publish(ctx, bagID, entities.BagCanceled)
	return canceled, nil
}

// ConfirmBag покупатель подтверждает доставку, баланс сверяется с журналом.
func (s *Bag) ConfirmBag(ctx context.Context, bagID, userID int64) (*entities.Bag, error) {
	if bagID <= 0 {
		return nil, ErrInvalidBagID
	}

	var confirmed *entities.Bag
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.lockOwned(ctx, bagID, userID)
		if err != nil {
			return err
		}
		if current.Status != entities.BagDelivered {
			return ErrBagNotDelivered
		}

		err = s.repository.UpdateStatus(ctx, bagID, entities.BagCompleted)
		if err != nil {
			return fmt.Errorf("update bag status: %w", err)
		}
		current.Status = entities.BagCompleted
		confirmed = current

		_, err = s.ledger.Reconcile(ctx, entities.Holder{Kind: entities.HolderUser, ID: userID})
		if err != nil {
			return fmt.Errorf("reconcile balance: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, bagID, entities.BagCompleted)
	return confirmed, nil
}

// RateAgent оценка агента по доставленному заказу. Повторная оценка заменяет прежнюю.
func (s *Bag) RateAgent(ctx context.Context, bagID, userID int64, stars int, comment string) (*entities.RatingResult, error) {
	if bagID <= 0 {
		return nil, ErrInvalidBagID
	}
	if !isValidStars(stars) {
		return nil, ErrInvalidRating
	}
	comment = strings.TrimSpace(comment)
	if !isValidComment(comment) {
		return nil, ErrCommentTooLong
	}

	var result *entities.RatingResult
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, bagID)
		if err != nil {
			return fmt.Errorf("get bag: %w", err)
		}
		if current.UserID != userID {
			return ErrNotBagOwner
		}
		if current.Status != entities.BagDelivered && current.Status != entities.BagCompleted {
			return ErrBagNotDelivered
		}

		latest, err := s.assignments.GetLatestByBagID(ctx, bagID)
		if err != nil {
			if errors.Is(err, assignment.ErrAssignmentNotFound) {
				return ErrNoAgentToRate
			}
			return fmt.Errorf("get assignment: %w", err)
		}
		if latest.AgentID == nil {
			return ErrNoAgentToRate
		}

		rating, created, err := s.ratings.Upsert(ctx, entities.Rating{
			BagID:   bagID,
			AgentID: *latest.AgentID,
			UserID:  userID,
			Stars:   stars,
			Comment: comment,
		})
		if err != nil {
			return fmt.Errorf("save rating: %w", err)
		}

		average, err := s.ratings.RecalculateAgentAverage(ctx, *latest.AgentID)
		if err != nil {
			return fmt.Errorf("recalculate agent rating: %w", err)
		}

		result = &entities.RatingResult{
			Rating:        *rating,
			Created:       created,
			AverageRating: average,
		}

		return s.notify(ctx, entities.Holder{Kind: entities.HolderAgent, ID: *latest.AgentID}, "New rating",
			fmt.Sprintf("You received %d stars for bag #%d.", stars, bagID))
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *Bag) lockOwned(ctx context.Context, bagID, userID int64) (*entities.Bag, error) {
	current, err := s.repository.GetByIDForUpdate(ctx, bagID)
	if err != nil {
		return nil, fmt.Errorf("get bag: %w", err)
	}
	if current.UserID != userID {
		return nil, ErrNotBagOwner
	}
	return current, nil
}

func (s *Bag) notify(ctx context.Context, recipient entities.Holder, title, message string) error {
	err := s.notifier.Notify(ctx, recipient, title, message, entities.NotificationOrder)
	if err != nil {
		return fmt.Errorf("notify %s: %w", recipient.Kind, err)
	}
	return nil
}

func (s *Bag) publish(ctx context.Context, bagID int64, status entities.BagStatus) {
	if err := s.events.PublishBagStatus(ctx, bagID, status); err != nil {
		s.log.Warn("publish bag status event",
			logger.NewField("bag", bagID),
			logger.NewField("status", status.String()),
			logger.NewField("error", err),
		)
	}
}
