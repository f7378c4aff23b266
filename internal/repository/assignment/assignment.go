package assignment

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"recycling/internal/entities"
	"recycling/internal/repository"
	"recycling/internal/service/assignment"
	"recycling/internal/service/matcher"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const columns = `id, bag_id, offered_agent_id, agent_id, status, user_phone, agent_phone, rejection_reason,
	cancel_reason, discrepancy_report, released_by_agent_id, assigned_at, accepted_at, started_at, completed_at,
	updated_at`

const activeStatuses = `('pending', 'accepted', 'in_transit')`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, assignmentModifyEntity entities.AssignmentModify) (*entities.Assignment, error) {
	assignmentModifyModel := FromDomainModify(&assignmentModifyEntity)
	query := `INSERT INTO assignments (bag_id, offered_agent_id, agent_id, status, user_phone)
		VALUES ($1, $2, $3, COALESCE($4, 'pending'), COALESCE($5, ''))
		RETURNING ` + columns

	assignmentModel, err := scan(r.querier.QueryRow(
		ctx,
		query,
		assignmentModifyModel.BagID,
		assignmentModifyModel.OfferedAgentID,
		assignmentModifyModel.AgentID,
		assignmentModifyModel.Status,
		assignmentModifyModel.UserPhone,
	))
	if err != nil {
		// ux_assignments_active_bag: у заказа не больше одного активного назначения
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, assignment.ErrBagAlreadyAssigned
		}
		return nil, fmt.Errorf("unexpected assignment repository create error: %w", err)
	}

	return ToDomain(assignmentModel), nil
}

func (r *Repository) Update(ctx context.Context, assignmentModifyEntity entities.AssignmentModify) (*entities.Assignment, error) {
	assignmentModifyModel := FromDomainModify(&assignmentModifyEntity)

	builder := qb.
		Update("assignments")

	// ClearAgent возвращает назначение в общий пул
	if assignmentModifyModel.ClearAgent {
		builder = builder.
			Set("agent_id", nil).
			Set("offered_agent_id", nil).
			Set("agent_phone", "").
			Set("accepted_at", nil)
	} else {
		if assignmentModifyModel.OfferedAgentID != nil {
			builder = builder.Set("offered_agent_id", assignmentModifyModel.OfferedAgentID)
		}
		if assignmentModifyModel.AgentID != nil {
			builder = builder.Set("agent_id", assignmentModifyModel.AgentID)
		}
		if assignmentModifyModel.AgentPhone != nil {
			builder = builder.Set("agent_phone", assignmentModifyModel.AgentPhone)
		}
		if assignmentModifyModel.AcceptedAt != nil {
			builder = builder.Set("accepted_at", assignmentModifyModel.AcceptedAt)
		}
	}

	if assignmentModifyModel.Status != nil {
		builder = builder.Set("status", assignmentModifyModel.Status)
	}
	if assignmentModifyModel.UserPhone != nil {
		builder = builder.Set("user_phone", assignmentModifyModel.UserPhone)
	}
	if assignmentModifyModel.RejectionReason != nil {
		builder = builder.Set("rejection_reason", assignmentModifyModel.RejectionReason)
	}
	if assignmentModifyModel.CancelReason != nil {
		builder = builder.Set("cancel_reason", assignmentModifyModel.CancelReason)
	}
	if assignmentModifyModel.DiscrepancyReport != nil {
		builder = builder.Set("discrepancy_report", assignmentModifyModel.DiscrepancyReport)
	}
	if assignmentModifyModel.ReleasedByAgentID != nil {
		builder = builder.Set("released_by_agent_id", assignmentModifyModel.ReleasedByAgentID)
	}
	if assignmentModifyModel.StartedAt != nil {
		builder = builder.Set("started_at", assignmentModifyModel.StartedAt)
	}
	if assignmentModifyModel.CompletedAt != nil {
		builder = builder.Set("completed_at", assignmentModifyModel.CompletedAt)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": assignmentModifyModel.ID}).
		Suffix("RETURNING " + columns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository update error: %w", err)
	}

	assignmentModel, err := scan(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrAssignmentNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, assignment.ErrBagAlreadyAssigned
		}
		return nil, fmt.Errorf("unexpected assignment repository update error: %w", err)
	}

	return ToDomain(assignmentModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Assignment, error) {
	return r.get(ctx, `SELECT `+columns+` FROM assignments WHERE id = $1`, id)
}

func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Assignment, error) {
	return r.get(ctx, `SELECT `+columns+` FROM assignments WHERE id = $1 FOR UPDATE`, id)
}

func (r *Repository) GetLatestByBagID(ctx context.Context, bagID int64) (*entities.Assignment, error) {
	query := `SELECT ` + columns + `
		FROM assignments
		WHERE bag_id = $1
		ORDER BY assigned_at DESC, id DESC
		LIMIT 1`

	return r.get(ctx, query, bagID)
}

func (r *Repository) GetActiveByBagID(ctx context.Context, bagID int64) (*entities.Assignment, error) {
	query := `SELECT ` + columns + `
		FROM assignments
		WHERE bag_id = $1 AND status IN ` + activeStatuses + `
		FOR UPDATE`

	return r.get(ctx, query, bagID)
}

func (r *Repository) CountInTransitForAgent(ctx context.Context, agentID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM assignments WHERE agent_id = $1 AND status = 'in_transit'`

	var count int64
	err := r.querier.QueryRow(ctx, query, agentID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected assignment repository countintransit error: %w", err)
	}
	return count, nil
}

// ListOffered ожидающие назначения, которые видит агент: предложенные ему
// и ещё никому не предложенные заказы из его региона.
func (r *Repository) ListOffered(ctx context.Context, agentID int64, governorate string) ([]entities.Assignment, error) {
	query := `
	SELECT ` + prefixed("a") + `
	FROM assignments a
	JOIN bags b ON b.id = a.bag_id
	JOIN users u ON u.id = b.user_id
	WHERE a.status = 'pending'
	  AND (
	    a.offered_agent_id = $1
	    OR (a.offered_agent_id IS NULL AND LOWER(TRIM(u.governorate)) = LOWER(TRIM($2)))
	  )
	ORDER BY a.assigned_at, a.id`

	return r.list(ctx, query, agentID, governorate)
}

func (r *Repository) ListActiveForAgent(ctx context.Context, agentID int64) ([]entities.Assignment, error) {
	query := `SELECT ` + columns + `
	FROM assignments
	WHERE agent_id = $1 AND status IN ('accepted', 'in_transit')
	ORDER BY accepted_at, id`

	return r.list(ctx, query, agentID)
}

func (r *Repository) ListHistoryForAgent(ctx context.Context, agentID int64) ([]entities.Assignment, error) {
	query := `SELECT ` + columns + `
	FROM assignments
	WHERE agent_id = $1 AND status IN ('delivered', 'rejected', 'canceled')
	ORDER BY updated_at DESC, id DESC`

	return r.list(ctx, query, agentID)
}

// FindAgentForAssignment наименее загруженный одобренный агент на линии в регионе.
// Нагрузка считается по активным назначениям, включая ещё не принятые предложения.
// excludeAgentID, если задан, из подбора исключается.
func (r *Repository) FindAgentForAssignment(ctx context.Context, governorate string, excludeAgentID *int64) (*entities.Agent, error) {
	query := `
        SELECT
            ag.id, ag.first_name, ag.last_name, ag.email, ag.phone, ag.governorate, ag.average_rating
        FROM agents ag
        LEFT JOIN assignments a
            ON COALESCE(a.agent_id, a.offered_agent_id) = ag.id
            AND a.status IN ` + activeStatuses + `
        WHERE ag.is_available
          AND ag.approval_status = 'approved'
          AND LOWER(TRIM(ag.governorate)) = LOWER(TRIM($1))
          AND ($2::BIGINT IS NULL OR ag.id <> $2)
        GROUP BY ag.id
        ORDER BY COUNT(a.id) ASC, ag.id ASC
        LIMIT 1
	`

	var agentModel AvailableAgentDB
	err := r.querier.QueryRow(ctx, query, governorate, excludeAgentID).Scan(
		&agentModel.ID,
		&agentModel.FirstName,
		&agentModel.LastName,
		&agentModel.Email,
		&agentModel.Phone,
		&agentModel.Governorate,
		&agentModel.AverageRating,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, matcher.ErrNoAvailableAgents
		}
		return nil, fmt.Errorf("unexpected assignment repository find agent error: %w", err)
	}

	return ToAgentDomain(&agentModel), nil
}

func (r *Repository) get(ctx context.Context, query string, args ...any) (*entities.Assignment, error) {
	assignmentModel, err := scan(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("unexpected assignment repository get error: %w", err)
	}
	return ToDomain(assignmentModel), nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]entities.Assignment, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository list error: %w", err)
	}
	defer rows.Close()

	assignmentModels := make([]AssignmentDB, 0, 8)
	for rows.Next() {
		assignmentModel, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected assignment repository list error: %w", err)
		}
		assignmentModels = append(assignmentModels, *assignmentModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository list error: %w", err)
	}

	return ToDomainList(assignmentModels), nil
}

func prefixed(alias string) string {
	return alias + `.id, ` + alias + `.bag_id, ` + alias + `.offered_agent_id, ` + alias + `.agent_id, ` +
		alias + `.status, ` + alias + `.user_phone, ` + alias + `.agent_phone, ` + alias + `.rejection_reason, ` +
		alias + `.cancel_reason, ` + alias + `.discrepancy_report, ` + alias + `.released_by_agent_id, ` +
		alias + `.assigned_at, ` +
		alias + `.accepted_at, ` + alias + `.started_at, ` + alias + `.completed_at, ` + alias + `.updated_at`
}

func scan(row pgx.Row) (*AssignmentDB, error) {
	var assignmentModel AssignmentDB
	err := row.Scan(
		&assignmentModel.ID,
		&assignmentModel.BagID,
		&assignmentModel.OfferedAgentID,
		&assignmentModel.AgentID,
		&assignmentModel.Status,
		&assignmentModel.UserPhone,
		&assignmentModel.AgentPhone,
		&assignmentModel.RejectionReason,
		&assignmentModel.CancelReason,
		&assignmentModel.DiscrepancyReport,
		&assignmentModel.ReleasedByAgentID,
		&assignmentModel.AssignedAt,
		&assignmentModel.AcceptedAt,
		&assignmentModel.StartedAt,
		&assignmentModel.CompletedAt,
		&assignmentModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &assignmentModel, nil
}
