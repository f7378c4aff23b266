package ledger

import (
	"context"
	"fmt"
	"strings"

	"recycling/internal/entities"
	"recycling/pkg/logger"
)

// Ledger журнал активностей владельца. Баланс всегда выводится из суммы журнала:
// points = max(sum, 0), rewards = points / 20.
type Ledger struct {
	log        serviceLogger
	repository Repository
	policy     RewardPolicy
	txManager  TxManager
}

func New(log serviceLogger, repository Repository, policy RewardPolicy, txManager TxManager) *Ledger {
	return &Ledger{
		log:        log.With(logger.NewField("service", "ledger")),
		repository: repository,
		policy:     policy,
		txManager:  txManager,
	}
}

func (s *Ledger) Balance(ctx context.Context, holder entities.Holder) (*entities.Balance, error) {
	if !isValidHolder(holder) {
		return nil, ErrInvalidHolder
	}

	balance, err := s.repository.GetBalance(ctx, holder)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return balance, nil
}

func (s *Ledger) Activities(ctx context.Context, holder entities.Holder) ([]entities.Activity, error) {
	if !isValidHolder(holder) {
		return nil, ErrInvalidHolder
	}

	activities, err := s.repository.ListActivities(ctx, holder)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}

// Lock блокирует строку владельца до конца транзакции из ctx.
func (s *Ledger) Lock(ctx context.Context, holder entities.Holder) (*entities.Balance, error) {
	if !isValidHolder(holder) {
		return nil, ErrInvalidHolder
	}

	balance, err := s.repository.LockBalance(ctx, holder)
	if err != nil {
		return nil, fmt.Errorf("lock balance: %w", err)
	}
	return balance, nil
}

func (s *Ledger) AddActivity(ctx context.Context, activity entities.Activity) (*entities.Balance, error) {
	if !isValidHolder(activity.Holder) {
		return nil, ErrInvalidHolder
	}
	if !isValidTitle(activity.Title) {
		return nil, ErrEmptyTitle
	}
	ok, err := isValidSign(activity.Type, activity.Points)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidPointsSign
	}
	activity.Title = strings.TrimSpace(activity.Title)

	var balance *entities.Balance
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		locked, err := s.repository.LockBalance(ctx, activity.Holder)
		if err != nil {
			return fmt.Errorf("lock balance: %w", err)
		}

		_, err = s.repository.InsertActivity(ctx, activity)
		if err != nil {
			return fmt.Errorf("insert activity: %w", err)
		}

		balance, err = s.recalculate(ctx, locked)
		return err
	})
	if err != nil {
		return nil, err
	}

	if activity.Points > 0 {
		PointsCreditedTotal.WithLabelValues(activity.Holder.Kind.String()).Add(float64(activity.Points))
	}
	return balance, nil
}

// Reconcile пересчитывает баланс из журнала и чинит расхождение, если оно есть.
func (s *Ledger) Reconcile(ctx context.Context, holder entities.Holder) (*entities.Balance, error) {
	if !isValidHolder(holder) {
		return nil, ErrInvalidHolder
	}

	var balance *entities.Balance
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		locked, err := s.repository.LockBalance(ctx, holder)
		if err != nil {
			return fmt.Errorf("lock balance: %w", err)
		}

		sum, err := s.repository.SumActivities(ctx, holder)
		if err != nil {
			return fmt.Errorf("sum activities: %w", err)
		}

		points := max(sum, 0)
		rewards := s.policy.RewardsFor(points)
		if locked.Points == points && locked.Rewards == rewards {
			balance = locked
			return nil
		}

		s.log.Warn("ledger drift repaired",
			logger.NewField("holder_type", holder.Kind.String()),
			logger.NewField("holder_id", holder.ID),
			logger.NewField("stored_points", locked.Points),
			logger.NewField("journal_points", points),
		)
		LedgerDriftTotal.WithLabelValues(holder.Kind.String()).Inc()

		balance, err = s.repository.SetBalance(ctx, holder, points, rewards)
		if err != nil {
			return fmt.Errorf("set balance: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return balance, nil
}

// Credit начисляет баллы и счётчики доставки одной записью журнала.
func (s *Ledger) Credit(ctx context.Context, credit entities.Credit) (*entities.Balance, error) {
	if !isValidHolder(credit.Holder) {
		return nil, ErrInvalidHolder
	}
	if !isValidTitle(credit.Title) {
		return nil, ErrEmptyTitle
	}
	if credit.Type == "" {
		credit.Type = entities.ActivityDelivered
	}
	ok, err := isValidSign(credit.Type, credit.Points)
	if err != nil {
		return nil, err
	}
	if !ok || credit.Points < 0 {
		return nil, ErrInvalidPointsSign
	}

	var balance *entities.Balance
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		_, err := s.repository.LockBalance(ctx, credit.Holder)
		if err != nil {
			return fmt.Errorf("lock balance: %w", err)
		}

		_, err = s.repository.InsertActivity(ctx, entities.Activity{
			Holder: credit.Holder,
			Title:  credit.Title,
			Points: credit.Points,
			Type:   credit.Type,
		})
		if err != nil {
			return fmt.Errorf("insert activity: %w", err)
		}

		points, rewards, err := s.journalBalance(ctx, credit.Holder)
		if err != nil {
			return err
		}

		balance, err = s.repository.ApplyCredit(ctx, credit, points, rewards)
		if err != nil {
			return fmt.Errorf("apply credit: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	PointsCreditedTotal.WithLabelValues(credit.Holder.Kind.String()).Add(float64(credit.Points))
	return balance, nil
}

// Debit списывает amount наград (amount*20 баллов). Обновление условное: rewards >= amount.
func (s *Ledger) Debit(ctx context.Context, holder entities.Holder, amount int64, title string) (*entities.Balance, error) {
	if !isValidHolder(holder) {
		return nil, ErrInvalidHolder
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !isValidTitle(title) {
		return nil, ErrEmptyTitle
	}

	var balance *entities.Balance
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		locked, err := s.repository.LockBalance(ctx, holder)
		if err != nil {
			return fmt.Errorf("lock balance: %w", err)
		}
		if locked.Rewards < amount {
			return ErrInsufficientRewards
		}

		_, err = s.repository.InsertActivity(ctx, entities.Activity{
			Holder: holder,
			Title:  title,
			Points: -s.policy.PointsFor(amount),
			Type:   entities.ActivityRedeem,
		})
		if err != nil {
			return fmt.Errorf("insert activity: %w", err)
		}

		points, rewards, err := s.journalBalance(ctx, holder)
		if err != nil {
			return err
		}

		balance, err = s.repository.ApplyDebit(ctx, holder, amount, points, rewards)
		if err != nil {
			return fmt.Errorf("apply debit: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	RewardsDebitedTotal.WithLabelValues(holder.Kind.String()).Add(float64(amount))
	return balance, nil
}

func (s *Ledger) recalculate(ctx context.Context, locked *entities.Balance) (*entities.Balance, error) {
	points, rewards, err := s.journalBalance(ctx, locked.Holder)
	if err != nil {
		return nil, err
	}
	if locked.Points == points && locked.Rewards == rewards {
		return locked, nil
	}

	balance, err := s.repository.SetBalance(ctx, locked.Holder, points, rewards)
	if err != nil {
		return nil, fmt.Errorf("set balance: %w", err)
	}
	return balance, nil
}

func (s *Ledger) journalBalance(ctx context.Context, holder entities.Holder) (points, rewards int64, err error) {
	sum, err := s.repository.SumActivities(ctx, holder)
	if err != nil {
		return 0, 0, fmt.Errorf("sum activities: %w", err)
	}
	points = max(sum, 0)
	return points, s.policy.RewardsFor(points), nil
}
