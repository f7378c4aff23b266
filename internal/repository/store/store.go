package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"recycling/internal/entities"
	"recycling/internal/service/store"
)

const branchColumns = `b.id, b.store_id, s.name, b.name, b.address`

// Repository справочник партнёрских магазинов. Данные заводятся миграциями.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) ListStores(ctx context.Context) ([]entities.Store, error) {
	query := `SELECT ` + branchColumns + `
	FROM branches b
	JOIN stores s ON s.id = b.store_id
	ORDER BY s.name, s.id, b.name, b.id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected store repository list error: %w", err)
	}

	branchModels, err := pgx.CollectRows(rows, pgx.RowToStructByPos[BranchDB])
	if err != nil {
		return nil, fmt.Errorf("unexpected store repository list error: %w", err)
	}

	return ToStoresDomain(branchModels), nil
}

func (r *Repository) GetBranch(ctx context.Context, id int64) (*entities.Branch, error) {
	query := `SELECT ` + branchColumns + `
	FROM branches b
	JOIN stores s ON s.id = b.store_id
	WHERE b.id = $1`

	var branchModel BranchDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&branchModel.ID,
		&branchModel.StoreID,
		&branchModel.StoreName,
		&branchModel.Name,
		&branchModel.Address,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrBranchNotFound
		}
		return nil, fmt.Errorf("unexpected store repository getbranch error: %w", err)
	}

	return ToBranchDomain(&branchModel), nil
}
