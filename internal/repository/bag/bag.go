package bag

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"recycling/internal/entities"
	"recycling/internal/service/bag"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const columns = "id, user_id, status, latitude, longitude, created_at, updated_at"

var openStatuses = []string{
	entities.BagPending.String(),
	entities.BagAssigned.String(),
	entities.BagAccepted.String(),
	entities.BagInTransit.String(),
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) ItemTypes(ctx context.Context) ([]entities.ItemType, error) {
	query := `
	SELECT id, name, points_per_unit, co2_per_unit
	FROM item_types
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected bag repository itemtypes error: %w", err)
	}
	defer rows.Close()

	itemTypes := make([]entities.ItemType, 0, 4)
	for rows.Next() {
		var itemTypeModel ItemTypeDB
		err := rows.Scan(
			&itemTypeModel.ID,
			&itemTypeModel.Name,
			&itemTypeModel.PointsPerUnit,
			&itemTypeModel.CO2PerUnit,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected bag repository itemtypes error: %w", err)
		}
		itemTypes = append(itemTypes, ToItemTypeDomain(itemTypeModel))
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected bag repository itemtypes error: %w", err)
	}

	return itemTypes, nil
}

// Create заказ и его позиции. Позиции уходят одним batch в той же транзакции.
func (r *Repository) Create(ctx context.Context, bagEntity entities.Bag) (*entities.Bag, error) {
	query := `INSERT INTO bags (user_id, status, latitude, longitude)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + columns

	bagModel, err := scan(r.querier.QueryRow(
		ctx,
		query,
		bagEntity.UserID,
		bagEntity.Status.String(),
		bagEntity.Latitude,
		bagEntity.Longitude,
	))
	if err != nil {
		return nil, fmt.Errorf("unexpected bag repository create error: %w", err)
	}

	items, err := r.insertItems(ctx, bagModel.ID, bagEntity.Items)
	if err != nil {
		return nil, err
	}

	return ToDomain(bagModel, items), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Bag, error) {
	return r.get(ctx, `SELECT `+columns+` FROM bags WHERE id = $1`, id)
}

func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Bag, error) {
	return r.get(ctx, `SELECT `+columns+` FROM bags WHERE id = $1 FOR UPDATE`, id)
}

func (r *Repository) HasOpenBag(ctx context.Context, userID int64) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM bags WHERE user_id = $1 AND status = ANY($2)
	)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, userID, openStatuses).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected bag repository hasopenbag error: %w", err)
	}
	return exists, nil
}

// GetCurrentForUser последний заказ, который ещё не отменён и не подтверждён покупателем.
func (r *Repository) GetCurrentForUser(ctx context.Context, userID int64) (*entities.Bag, error) {
	query := `SELECT ` + columns + `
		FROM bags
		WHERE user_id = $1 AND status NOT IN ('canceled', 'completed')
		ORDER BY created_at DESC, id DESC
		LIMIT 1`

	return r.get(ctx, query, userID)
}

func (r *Repository) ListForUser(ctx context.Context, userID int64, activeOnly bool) ([]entities.Bag, error) {
	builder := qb.
		Select(columns).
		From("bags").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC")

	if activeOnly {
		builder = builder.Where(sq.Eq{"status": openStatuses})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected bag repository listforuser error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected bag repository listforuser error: %w", err)
	}
	defer rows.Close()

	bagModels := make([]BagDB, 0, 8)
	for rows.Next() {
		bagModel, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected bag repository listforuser error: %w", err)
		}
		bagModels = append(bagModels, *bagModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected bag repository listforuser error: %w", err)
	}

	ids := make([]int64, 0, len(bagModels))
	for _, bagModel := range bagModels {
		ids = append(ids, bagModel.ID)
	}
	itemsByBag, err := r.items(ctx, ids)
	if err != nil {
		return nil, err
	}

	bags := make([]entities.Bag, 0, len(bagModels))
	for i := range bagModels {
		bags = append(bags, *ToDomain(&bagModels[i], itemsByBag[bagModels[i].ID]))
	}
	return bags, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status entities.BagStatus) error {
	query := `UPDATE bags SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id, status.String())
	if err != nil {
		return fmt.Errorf("unexpected bag repository updatestatus error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return bag.ErrBagNotFound
	}
	return nil
}

// ReplaceItems заменяет позиции заказа результатом проверки агента.
func (r *Repository) ReplaceItems(ctx context.Context, bagID int64, items []entities.BagItem) error {
	_, err := r.querier.Exec(ctx, `DELETE FROM bag_items WHERE bag_id = $1`, bagID)
	if err != nil {
		return fmt.Errorf("unexpected bag repository replaceitems error: %w", err)
	}

	_, err = r.insertItems(ctx, bagID, items)
	return err
}

// ListPendingIDs заказы без агента, старые первыми.
func (r *Repository) ListPendingIDs(ctx context.Context, limit int) ([]int64, error) {
	query := `
	SELECT id
	FROM bags
	WHERE status = 'pending'
	ORDER BY created_at, id
	LIMIT $1`

	rows, err := r.querier.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected bag repository listpendingids error: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("unexpected bag repository listpendingids error: %w", err)
	}
	return ids, nil
}

func (r *Repository) get(ctx context.Context, query string, args ...any) (*entities.Bag, error) {
	bagModel, err := scan(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, bag.ErrBagNotFound
		}
		return nil, fmt.Errorf("unexpected bag repository get error: %w", err)
	}

	itemsByBag, err := r.items(ctx, []int64{bagModel.ID})
	if err != nil {
		return nil, err
	}

	return ToDomain(bagModel, itemsByBag[bagModel.ID]), nil
}

func (r *Repository) insertItems(ctx context.Context, bagID int64, items []entities.BagItem) ([]BagItemDB, error) {
	if len(items) == 0 {
		return nil, nil
	}

	query := `INSERT INTO bag_items (bag_id, item_type_id, quantity, points, co2)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query, bagID, item.ItemTypeID, item.Quantity, item.Points, item.CO2)
	}

	results := r.querier.SendBatch(ctx, batch)
	defer results.Close()

	inserted := make([]BagItemDB, 0, len(items))
	for _, item := range items {
		itemModel := BagItemDB{
			BagID:      bagID,
			ItemTypeID: item.ItemTypeID,
			ItemType:   item.ItemType,
			Quantity:   item.Quantity,
			Points:     item.Points,
			CO2:        item.CO2,
		}
		err := results.QueryRow().Scan(&itemModel.ID)
		if err != nil {
			return nil, fmt.Errorf("unexpected bag repository insert items error: %w", err)
		}
		inserted = append(inserted, itemModel)
	}

	return inserted, nil
}

func (r *Repository) items(ctx context.Context, bagIDs []int64) (map[int64][]BagItemDB, error) {
	itemsByBag := make(map[int64][]BagItemDB, len(bagIDs))
	if len(bagIDs) == 0 {
		return itemsByBag, nil
	}

	query := `
	SELECT bi.id, bi.bag_id, bi.item_type_id, it.name, bi.quantity, bi.points, bi.co2
	FROM bag_items bi
	JOIN item_types it ON it.id = bi.item_type_id
	WHERE bi.bag_id = ANY($1)
	ORDER BY bi.bag_id, bi.id`

	rows, err := r.querier.Query(ctx, query, bagIDs)
	if err != nil {
		return nil, fmt.Errorf("unexpected bag repository items error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var itemModel BagItemDB
		err := rows.Scan(
			&itemModel.ID,
			&itemModel.BagID,
			&itemModel.ItemTypeID,
			&itemModel.ItemType,
			&itemModel.Quantity,
			&itemModel.Points,
			&itemModel.CO2,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected bag repository items error: %w", err)
		}
		itemsByBag[itemModel.BagID] = append(itemsByBag[itemModel.BagID], itemModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected bag repository items error: %w", err)
	}

	return itemsByBag, nil
}

func scan(row pgx.Row) (*BagDB, error) {
	var bagModel BagDB
	err := row.Scan(
		&bagModel.ID,
		&bagModel.UserID,
		&bagModel.Status,
		&bagModel.Latitude,
		&bagModel.Longitude,
		&bagModel.CreatedAt,
		&bagModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &bagModel, nil
}
