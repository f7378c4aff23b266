package rating

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"recycling/internal/entities"
	"recycling/internal/service/agent"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Upsert одна оценка на заказ: повторная оценка перезаписывает предыдущую.
// Второй результат true, если оценка создана, а не обновлена.
func (r *Repository) Upsert(ctx context.Context, rating entities.Rating) (*entities.Rating, bool, error) {
	query := `INSERT INTO ratings (bag_id, agent_id, user_id, stars, comment)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (bag_id) DO UPDATE
		SET stars = EXCLUDED.stars, comment = EXCLUDED.comment, updated_at = NOW()
		RETURNING id, bag_id, agent_id, user_id, stars, comment, created_at, (xmax = 0)`

	var ratingModel RatingDB
	var created bool
	err := r.querier.QueryRow(
		ctx,
		query,
		rating.BagID,
		rating.AgentID,
		rating.UserID,
		rating.Stars,
		rating.Comment,
	).Scan(
		&ratingModel.ID,
		&ratingModel.BagID,
		&ratingModel.AgentID,
		&ratingModel.UserID,
		&ratingModel.Stars,
		&ratingModel.Comment,
		&ratingModel.CreatedAt,
		&created,
	)
	if err != nil {
		return nil, false, fmt.Errorf("unexpected rating repository upsert error: %w", err)
	}

	return ToDomain(&ratingModel), created, nil
}

// RecalculateAgentAverage средняя оценка агента с округлением до сотых.
func (r *Repository) RecalculateAgentAverage(ctx context.Context, agentID int64) (float64, error) {
	query := `UPDATE agents
		SET average_rating = COALESCE(
			(SELECT ROUND(AVG(stars)::NUMERIC, 2) FROM ratings WHERE agent_id = $1),
			0
		), updated_at = NOW()
		WHERE id = $1
		RETURNING average_rating::FLOAT8`

	var average float64
	err := r.querier.QueryRow(ctx, query, agentID).Scan(&average)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, agent.ErrAgentNotFound
		}
		return 0, fmt.Errorf("unexpected rating repository recalculate error: %w", err)
	}
	return average, nil
}
