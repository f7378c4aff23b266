package notification

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"recycling/internal/entities"
	"recycling/internal/service/notification"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const columns = `id, recipient_kind, recipient_id, title, message, type, is_read, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, n entities.Notification) (*entities.Notification, error) {
	query := `INSERT INTO notifications (recipient_kind, recipient_id, title, message, type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + columns

	notificationModel, err := scan(r.querier.QueryRow(
		ctx,
		query,
		n.Recipient.Kind.String(),
		n.Recipient.ID,
		n.Title,
		n.Message,
		n.Type.String(),
	))
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository create error: %w", err)
	}

	return ToDomain(notificationModel), nil
}

func (r *Repository) List(ctx context.Context, recipient entities.Holder, unreadOnly bool) ([]entities.Notification, error) {
	builder := qb.
		Select(columns).
		From("notifications").
		Where(sq.Eq{"recipient_kind": recipient.Kind.String(), "recipient_id": recipient.ID})

	if unreadOnly {
		builder = builder.Where(sq.Eq{"is_read": false})
	}

	query, args, err := builder.
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}
	defer rows.Close()

	notificationModels := make([]NotificationDB, 0, 16)
	for rows.Next() {
		notificationModel, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
		}
		notificationModels = append(notificationModels, *notificationModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}

	return ToDomainList(notificationModels), nil
}

// MarkRead чужое уведомление для получателя не существует.
func (r *Repository) MarkRead(ctx context.Context, recipient entities.Holder, id int64) error {
	tag, err := r.querier.Exec(ctx, `UPDATE notifications
		SET is_read = TRUE
		WHERE id = $1 AND recipient_kind = $2 AND recipient_id = $3`,
		id, recipient.Kind.String(), recipient.ID,
	)
	if err != nil {
		return fmt.Errorf("unexpected notification repository markread error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notification.ErrNotificationNotFound
	}
	return nil
}

func (r *Repository) MarkAllRead(ctx context.Context, recipient entities.Holder) (int64, error) {
	tag, err := r.querier.Exec(ctx, `UPDATE notifications
		SET is_read = TRUE
		WHERE recipient_kind = $1 AND recipient_id = $2 AND NOT is_read`,
		recipient.Kind.String(), recipient.ID,
	)
	if err != nil {
		return 0, fmt.Errorf("unexpected notification repository markallread error: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) DeleteAll(ctx context.Context, recipient entities.Holder) (int64, error) {
	tag, err := r.querier.Exec(ctx, `DELETE FROM notifications WHERE recipient_kind = $1 AND recipient_id = $2`,
		recipient.Kind.String(), recipient.ID,
	)
	if err != nil {
		return 0, fmt.Errorf("unexpected notification repository deleteall error: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scan(row pgx.Row) (*NotificationDB, error) {
	var notificationModel NotificationDB
	err := row.Scan(
		&notificationModel.ID,
		&notificationModel.RecipientKind,
		&notificationModel.RecipientID,
		&notificationModel.Title,
		&notificationModel.Message,
		&notificationModel.Type,
		&notificationModel.IsRead,
		&notificationModel.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &notificationModel, nil
}
