package voucher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"recycling/internal/entities"
	"recycling/internal/repository"
	"recycling/internal/service/voucher"
)

const columns = `id, holder_kind, holder_id, holder_email, code, amount, is_used, used_at, used_branch_id,
	qr_payload, expires_at, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, v entities.Voucher) (*entities.Voucher, error) {
	query := `INSERT INTO vouchers (holder_kind, holder_id, holder_email, code, amount, qr_payload, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + columns

	voucherModel, err := scan(r.querier.QueryRow(
		ctx,
		query,
		v.Holder.Kind.String(),
		v.Holder.ID,
		v.HolderEmail,
		v.Code,
		v.Amount,
		v.QRPayload,
		v.ExpiresAt,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, voucher.ErrCodeCollision
		}
		return nil, fmt.Errorf("unexpected voucher repository create error: %w", err)
	}

	return ToDomain(voucherModel), nil
}

func (r *Repository) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM vouchers WHERE code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected voucher repository codeexists error: %w", err)
	}
	return exists, nil
}

// GetActiveForHolder последний неиспользованный и не истёкший ваучер владельца.
func (r *Repository) GetActiveForHolder(ctx context.Context, holder entities.Holder, now time.Time) (*entities.Voucher, error) {
	query := `SELECT ` + columns + `
		FROM vouchers
		WHERE holder_kind = $1 AND holder_id = $2 AND NOT is_used AND expires_at > $3
		ORDER BY created_at DESC, id DESC
		LIMIT 1`

	return r.get(ctx, query, holder.Kind.String(), holder.ID, now)
}

func (r *Repository) GetByCode(ctx context.Context, code string) (*entities.Voucher, error) {
	return r.get(ctx, `SELECT `+columns+` FROM vouchers WHERE code = $1`, code)
}

func (r *Repository) GetByCodeForUpdate(ctx context.Context, code string) (*entities.Voucher, error) {
	return r.get(ctx, `SELECT `+columns+` FROM vouchers WHERE code = $1 FOR UPDATE`, code)
}

func (r *Repository) ListForHolder(ctx context.Context, holder entities.Holder) ([]entities.Voucher, error) {
	query := `SELECT ` + columns + `
		FROM vouchers
		WHERE holder_kind = $1 AND holder_id = $2
		ORDER BY created_at DESC, id DESC`

	return r.list(ctx, query, holder.Kind.String(), holder.ID)
}

// MarkUsed условное погашение: повторное погашение того же ваучера не меняет строку.
func (r *Repository) MarkUsed(ctx context.Context, id, branchID int64, usedAt time.Time) (*entities.Voucher, error) {
	query := `UPDATE vouchers
		SET is_used = TRUE, used_at = $2, used_branch_id = $3
		WHERE id = $1 AND NOT is_used
		RETURNING ` + columns

	voucherModel, err := scan(r.querier.QueryRow(ctx, query, id, usedAt, branchID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, voucher.ErrVoucherAlreadyUsed
		}
		return nil, fmt.Errorf("unexpected voucher repository markused error: %w", err)
	}

	return ToDomain(voucherModel), nil
}

func (r *Repository) CreateUsage(ctx context.Context, usage entities.VoucherUsage) (*entities.VoucherUsage, error) {
	query := `INSERT INTO voucher_usages (voucher_id, branch_id, used_at)
		VALUES ($1, $2, $3)
		RETURNING id, used_at`

	usageModel := VoucherUsageDB{
		VoucherID:  usage.VoucherID,
		Code:       usage.Code,
		Amount:     usage.Amount,
		BranchID:   usage.BranchID,
		BranchName: usage.BranchName,
		StoreName:  usage.StoreName,
	}
	err := r.querier.QueryRow(ctx, query, usage.VoucherID, usage.BranchID, usage.UsedAt).
		Scan(&usageModel.ID, &usageModel.UsedAt)
	if err != nil {
		return nil, fmt.Errorf("unexpected voucher repository create usage error: %w", err)
	}

	return ToUsageDomain(&usageModel), nil
}

func (r *Repository) ListUsagesForHolder(ctx context.Context, holder entities.Holder) ([]entities.VoucherUsage, error) {
	query := `
	SELECT u.id, u.voucher_id, v.code, v.amount, u.branch_id, b.name, s.name, u.used_at
	FROM voucher_usages u
	JOIN vouchers v ON v.id = u.voucher_id
	JOIN branches b ON b.id = u.branch_id
	JOIN stores s ON s.id = b.store_id
	WHERE v.holder_kind = $1 AND v.holder_id = $2
	ORDER BY u.used_at DESC, u.id DESC`

	rows, err := r.querier.Query(ctx, query, holder.Kind.String(), holder.ID)
	if err != nil {
		return nil, fmt.Errorf("unexpected voucher repository list usages error: %w", err)
	}
	defer rows.Close()

	usages := make([]entities.VoucherUsage, 0, 8)
	for rows.Next() {
		var usageModel VoucherUsageDB
		err := rows.Scan(
			&usageModel.ID,
			&usageModel.VoucherID,
			&usageModel.Code,
			&usageModel.Amount,
			&usageModel.BranchID,
			&usageModel.BranchName,
			&usageModel.StoreName,
			&usageModel.UsedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected voucher repository list usages error: %w", err)
		}
		usages = append(usages, *ToUsageDomain(&usageModel))
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected voucher repository list usages error: %w", err)
	}

	return usages, nil
}

func (r *Repository) ListExpiredUnnotified(ctx context.Context, now time.Time, limit int) ([]entities.Voucher, error) {
	query := `SELECT ` + columns + `
		FROM vouchers
		WHERE NOT is_used AND NOT expiry_notified AND expires_at <= $1
		ORDER BY expires_at, id
		LIMIT $2`

	return r.list(ctx, query, now, limit)
}

// MarkExpiryNotified false, если уведомление об истечении уже отмечено другим процессом.
func (r *Repository) MarkExpiryNotified(ctx context.Context, id int64) (bool, error) {
	tag, err := r.querier.Exec(ctx,
		`UPDATE vouchers SET expiry_notified = TRUE WHERE id = $1 AND NOT expiry_notified`, id)
	if err != nil {
		return false, fmt.Errorf("unexpected voucher repository mark expiry notified error: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) get(ctx context.Context, query string, args ...any) (*entities.Voucher, error) {
	voucherModel, err := scan(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, voucher.ErrVoucherNotFound
		}
		return nil, fmt.Errorf("unexpected voucher repository get error: %w", err)
	}
	return ToDomain(voucherModel), nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]entities.Voucher, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected voucher repository list error: %w", err)
	}
	defer rows.Close()

	voucherModels := make([]VoucherDB, 0, 8)
	for rows.Next() {
		voucherModel, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected voucher repository list error: %w", err)
		}
		voucherModels = append(voucherModels, *voucherModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected voucher repository list error: %w", err)
	}

	return ToDomainList(voucherModels), nil
}

func scan(row pgx.Row) (*VoucherDB, error) {
	var voucherModel VoucherDB
	err := row.Scan(
		&voucherModel.ID,
		&voucherModel.HolderKind,
		&voucherModel.HolderID,
		&voucherModel.HolderEmail,
		&voucherModel.Code,
		&voucherModel.Amount,
		&voucherModel.IsUsed,
		&voucherModel.UsedAt,
		&voucherModel.UsedBranchID,
		&voucherModel.QRPayload,
		&voucherModel.ExpiresAt,
		&voucherModel.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &voucherModel, nil
}
