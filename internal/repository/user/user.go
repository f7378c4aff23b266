package user

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"recycling/internal/entities"
	"recycling/internal/repository"
	"recycling/internal/service/user"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const columns = `id, first_name, last_name, email, phone, password_hash, governorate,
	points, rewards, co2_saved, items_recycled, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, userModifyEntity entities.UserModify) (*entities.User, error) {
	userModifyModel := FromDomainModify(&userModifyEntity)
	query := `INSERT INTO users (first_name, last_name, email, phone, password_hash, governorate)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + columns

	userModel, err := scan(r.querier.QueryRow(
		ctx,
		query,
		userModifyModel.FirstName,
		userModifyModel.LastName,
		userModifyModel.Email,
		userModifyModel.Phone,
		userModifyModel.PasswordHash,
		userModifyModel.Governorate,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, user.ErrEmailTaken
		}
		return nil, fmt.Errorf("unexpected user repository create error: %w", err)
	}

	return ToDomain(userModel), nil
}

func (r *Repository) Update(ctx context.Context, userModifyEntity entities.UserModify) (*entities.User, error) {
	userModifyModel := FromDomainModify(&userModifyEntity)

	builder := qb.
		Update("users")

	// опциональные поля
	if userModifyModel.FirstName != nil {
		builder = builder.Set("first_name", userModifyModel.FirstName)
	}
	if userModifyModel.LastName != nil {
		builder = builder.Set("last_name", userModifyModel.LastName)
	}
	if userModifyModel.Email != nil {
		builder = builder.Set("email", userModifyModel.Email)
	}
	if userModifyModel.Phone != nil {
		builder = builder.Set("phone", userModifyModel.Phone)
	}
	if userModifyModel.PasswordHash != nil {
		builder = builder.Set("password_hash", userModifyModel.PasswordHash)
	}
	if userModifyModel.Governorate != nil {
		builder = builder.Set("governorate", userModifyModel.Governorate)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": userModifyModel.ID}).
		Suffix("RETURNING " + columns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	userModel, err := scan(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, user.ErrEmailTaken
		}
		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	return ToDomain(userModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	query := `SELECT ` + columns + `
		FROM users
		WHERE id = $1`

	userModel, err := scan(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository getbyid error: %w", err)
	}

	return ToDomain(userModel), nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := `SELECT ` + columns + `
		FROM users
		WHERE LOWER(email) = LOWER($1)`

	userModel, err := scan(r.querier.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository getbyemail error: %w", err)
	}

	return ToDomain(userModel), nil
}

func scan(row pgx.Row) (*UserDB, error) {
	var userModel UserDB
	err := row.Scan(
		&userModel.ID,
		&userModel.FirstName,
		&userModel.LastName,
		&userModel.Email,
		&userModel.Phone,
		&userModel.PasswordHash,
		&userModel.Governorate,
		&userModel.Points,
		&userModel.Rewards,
		&userModel.CO2Saved,
		&userModel.ItemsRecycled,
		&userModel.CreatedAt,
		&userModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &userModel, nil
}
