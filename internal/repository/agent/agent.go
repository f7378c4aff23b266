package agent

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"recycling/internal/entities"
	"recycling/internal/repository"
	"recycling/internal/service/agent"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const columns = `id, first_name, last_name, email, phone, password_hash, governorate, is_available,
	approval_status, points, rewards, total_orders_delivered, average_rating, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, agentModifyEntity entities.AgentModify) (*entities.Agent, error) {
	agentModifyModel := FromDomainModify(&agentModifyEntity)
	query := `INSERT INTO agents (first_name, last_name, email, phone, password_hash, governorate, is_available, approval_status)
		VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, FALSE), COALESCE($8, 'pending'))
		RETURNING ` + columns

	agentModel, err := scan(r.querier.QueryRow(
		ctx,
		query,
		agentModifyModel.FirstName,
		agentModifyModel.LastName,
		agentModifyModel.Email,
		agentModifyModel.Phone,
		agentModifyModel.PasswordHash,
		agentModifyModel.Governorate,
		agentModifyModel.IsAvailable,
		agentModifyModel.ApprovalStatus,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, agent.ErrEmailTaken
		}
		return nil, fmt.Errorf("unexpected agent repository create error: %w", err)
	}

	return ToDomain(agentModel), nil
}

func (r *Repository) Update(ctx context.Context, agentModifyEntity entities.AgentModify) (*entities.Agent, error) {
	agentModifyModel := FromDomainModify(&agentModifyEntity)

	builder := qb.
		Update("agents")

	// опциональные поля
	if agentModifyModel.FirstName != nil {
		builder = builder.Set("first_name", agentModifyModel.FirstName)
	}
	if agentModifyModel.LastName != nil {
		builder = builder.Set("last_name", agentModifyModel.LastName)
	}
	if agentModifyModel.Email != nil {
		builder = builder.Set("email", agentModifyModel.Email)
	}
	if agentModifyModel.Phone != nil {
		builder = builder.Set("phone", agentModifyModel.Phone)
	}
	if agentModifyModel.PasswordHash != nil {
		builder = builder.Set("password_hash", agentModifyModel.PasswordHash)
	}
	if agentModifyModel.Governorate != nil {
		builder = builder.Set("governorate", agentModifyModel.Governorate)
	}
	if agentModifyModel.IsAvailable != nil {
		builder = builder.Set("is_available", agentModifyModel.IsAvailable)
	}
	if agentModifyModel.ApprovalStatus != nil {
		builder = builder.Set("approval_status", agentModifyModel.ApprovalStatus)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": agentModifyModel.ID}).
		Suffix("RETURNING " + columns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected agent repository update error: %w", err)
	}

	agentModel, err := scan(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, agent.ErrAgentNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, agent.ErrEmailTaken
		}

		return nil, fmt.Errorf("unexpected agent repository update error: %w", err)
	}

	return ToDomain(agentModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Agent, error) {
	query := `SELECT ` + columns + `
		FROM agents
		WHERE id = $1`

	agentModel, err := scan(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, agent.ErrAgentNotFound
		}

		return nil, fmt.Errorf("unexpected agent repository getbyid error: %w", err)
	}

	return ToDomain(agentModel), nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.Agent, error) {
	query := `SELECT ` + columns + `
		FROM agents
		WHERE LOWER(email) = LOWER($1)`

	agentModel, err := scan(r.querier.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, agent.ErrAgentNotFound
		}

		return nil, fmt.Errorf("unexpected agent repository getbyemail error: %w", err)
	}

	return ToDomain(agentModel), nil
}

// ListByApproval агенты с заданным статусом одобрения, старые первыми.
func (r *Repository) ListByApproval(ctx context.Context, status entities.AgentApprovalStatus) ([]entities.Agent, error) {
	query := `
	SELECT ` + columns + `
	FROM agents
	WHERE approval_status = $1
	ORDER BY created_at, id`

	rows, err := r.querier.Query(ctx, query, status.String())
	if err != nil {
		return nil, fmt.Errorf("unexpected agent repository listbyapproval error: %w", err)
	}
	defer rows.Close()

	agentModels := make([]AgentDB, 0, 8)
	for rows.Next() {
		agentModel, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected agent repository listbyapproval error: %w", err)
		}
		agentModels = append(agentModels, *agentModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected agent repository listbyapproval error: %w", err)
	}

	return ToDomainList(agentModels), nil
}

func scan(row pgx.Row) (*AgentDB, error) {
	var agentModel AgentDB
	err := row.Scan(
		&agentModel.ID,
		&agentModel.FirstName,
		&agentModel.LastName,
		&agentModel.Email,
		&agentModel.Phone,
		&agentModel.PasswordHash,
		&agentModel.Governorate,
		&agentModel.IsAvailable,
		&agentModel.ApprovalStatus,
		&agentModel.Points,
		&agentModel.Rewards,
		&agentModel.TotalOrdersDelivered,
		&agentModel.AverageRating,
		&agentModel.CreatedAt,
		&agentModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &agentModel, nil
}
