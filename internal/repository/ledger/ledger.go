package ledger

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"recycling/internal/entities"
	"recycling/internal/service/ledger"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	activityColumns = `id, holder_kind, holder_id, title, points, type, created_at`
	balanceColumns  = `id, email, points, rewards`
)

// Repository журнал активностей и денормализованный баланс в строке владельца.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) InsertActivity(ctx context.Context, activity entities.Activity) (*entities.Activity, error) {
	query := `INSERT INTO activities (holder_kind, holder_id, title, points, type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + activityColumns

	var activityModel ActivityDB
	err := r.querier.QueryRow(
		ctx,
		query,
		activity.Holder.Kind.String(),
		activity.Holder.ID,
		activity.Title,
		activity.Points,
		activity.Type.String(),
	).Scan(
		&activityModel.ID,
		&activityModel.HolderKind,
		&activityModel.HolderID,
		&activityModel.Title,
		&activityModel.Points,
		&activityModel.Type,
		&activityModel.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected ledger repository insert activity error: %w", err)
	}

	return ToDomain(&activityModel), nil
}

func (r *Repository) ListActivities(ctx context.Context, holder entities.Holder) ([]entities.Activity, error) {
	query := `SELECT ` + activityColumns + `
	FROM activities
	WHERE holder_kind = $1 AND holder_id = $2
	ORDER BY created_at DESC, id DESC`

	rows, err := r.querier.Query(ctx, query, holder.Kind.String(), holder.ID)
	if err != nil {
		return nil, fmt.Errorf("unexpected ledger repository list activities error: %w", err)
	}
	defer rows.Close()

	activityModels := make([]ActivityDB, 0, 16)
	for rows.Next() {
		var activityModel ActivityDB
		err := rows.Scan(
			&activityModel.ID,
			&activityModel.HolderKind,
			&activityModel.HolderID,
			&activityModel.Title,
			&activityModel.Points,
			&activityModel.Type,
			&activityModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected ledger repository list activities error: %w", err)
		}
		activityModels = append(activityModels, activityModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected ledger repository list activities error: %w", err)
	}

	return ToDomainList(activityModels), nil
}

func (r *Repository) SumActivities(ctx context.Context, holder entities.Holder) (int64, error) {
	query := `SELECT COALESCE(SUM(points), 0)::BIGINT
	FROM activities
	WHERE holder_kind = $1 AND holder_id = $2`

	var sum int64
	err := r.querier.QueryRow(ctx, query, holder.Kind.String(), holder.ID).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("unexpected ledger repository sum activities error: %w", err)
	}
	return sum, nil
}

func (r *Repository) GetBalance(ctx context.Context, holder entities.Holder) (*entities.Balance, error) {
	table, err := holderTable(holder.Kind)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + balanceColumns + ` FROM ` + table + ` WHERE id = $1`
	return r.balance(ctx, holder.Kind, query, holder.ID)
}

// LockBalance строка владельца под FOR UPDATE до конца текущей транзакции.
func (r *Repository) LockBalance(ctx context.Context, holder entities.Holder) (*entities.Balance, error) {
	table, err := holderTable(holder.Kind)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + balanceColumns + ` FROM ` + table + ` WHERE id = $1 FOR UPDATE`
	return r.balance(ctx, holder.Kind, query, holder.ID)
}

func (r *Repository) SetBalance(ctx context.Context, holder entities.Holder, points, rewards int64) (*entities.Balance, error) {
	table, err := holderTable(holder.Kind)
	if err != nil {
		return nil, err
	}

	query, args, err := qb.
		Update(table).
		Set("points", points).
		Set("rewards", rewards).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": holder.ID}).
		Suffix("RETURNING " + balanceColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected ledger repository set balance error: %w", err)
	}

	return r.balance(ctx, holder.Kind, query, args...)
}

// ApplyCredit записывает баланс из журнала и наращивает счётчики доставки.
func (r *Repository) ApplyCredit(ctx context.Context, credit entities.Credit, points, rewards int64) (*entities.Balance, error) {
	table, err := holderTable(credit.Holder.Kind)
	if err != nil {
		return nil, err
	}

	builder := qb.
		Update(table).
		Set("points", points).
		Set("rewards", rewards)

	switch credit.Holder.Kind {
	case entities.HolderUser:
		builder = builder.
			Set("co2_saved", sq.Expr("co2_saved + ?", credit.CO2)).
			Set("items_recycled", sq.Expr("items_recycled + ?", credit.Items))
	case entities.HolderAgent:
		builder = builder.
			Set("total_orders_delivered", sq.Expr("total_orders_delivered + ?", credit.Delivered))
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": credit.Holder.ID}).
		Suffix("RETURNING " + balanceColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected ledger repository apply credit error: %w", err)
	}

	return r.balance(ctx, credit.Holder.Kind, query, args...)
}

// ApplyDebit условное списание: строка меняется только при rewards >= amount.
func (r *Repository) ApplyDebit(ctx context.Context, holder entities.Holder, amount, points, rewards int64) (*entities.Balance, error) {
	table, err := holderTable(holder.Kind)
	if err != nil {
		return nil, err
	}

	query, args, err := qb.
		Update(table).
		Set("points", points).
		Set("rewards", rewards).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": holder.ID}).
		Where(sq.GtOrEq{"rewards": amount}).
		Suffix("RETURNING " + balanceColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected ledger repository apply debit error: %w", err)
	}

	balance, err := r.balance(ctx, holder.Kind, query, args...)
	if errors.Is(err, ledger.ErrHolderNotFound) {
		return nil, ledger.ErrInsufficientRewards
	}
	return balance, err
}

func (r *Repository) balance(ctx context.Context, kind entities.HolderKind, query string, args ...any) (*entities.Balance, error) {
	var balanceModel BalanceDB
	err := r.querier.QueryRow(ctx, query, args...).Scan(
		&balanceModel.ID,
		&balanceModel.Email,
		&balanceModel.Points,
		&balanceModel.Rewards,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ledger.ErrHolderNotFound
		}
		return nil, fmt.Errorf("unexpected ledger repository balance error: %w", err)
	}

	return ToBalanceDomain(kind, &balanceModel), nil
}

func holderTable(kind entities.HolderKind) (string, error) {
	switch kind {
	case entities.HolderUser:
		return "users", nil
	case entities.HolderAgent:
		return "agents", nil
	default:
		return "", ledger.ErrInvalidHolder
	}
}
