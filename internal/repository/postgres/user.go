package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dtroode/adminpanel-server/internal/model"
)

const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func scanUser(row pgx.Row) (model.User, error) {
	var user model.User
	var role string
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Image, &user.EmailVerified, &role, &user.Banned,
		&user.BanReason, &user.AdminGrantedPro, &user.CreatedAt, &user.UpdatedAt, &user.ChatCount,
	)
	user.Role = model.Role(role)
	return user, err
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (model.User, error) {
	query := `SELECT ` + userColumns + `, ` + chatCountColumn + `
			  FROM users u WHERE u.id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := `SELECT ` + userColumns + `, ` + chatCountColumn + `
			  FROM users u WHERE lower(u.email) = lower($1)`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) List(ctx context.Context, q model.UserQuery) ([]model.UserListItem, error) {
	query, args := buildListQuery(q)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	items := make([]model.UserListItem, 0, q.Limit)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		items = append(items, model.UserListItem{
			ID:            user.ID,
			Name:          user.Name,
			Email:         user.Email,
			Role:          user.Role,
			Banned:        user.Banned,
			CreatedAt:     user.CreatedAt,
			UpdatedAt:     user.UpdatedAt,
			EmailVerified: user.EmailVerified,
			Image:         user.Image,
			ChatCount:     user.ChatCount,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return items, nil
}

func (r *UserRepository) Count(ctx context.Context, search string) (int64, error) {
	query, args := buildCountQuery(search)

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	return total, nil
}

func (r *UserRepository) Update(ctx context.Context, id string, patch model.UserPatch) (model.User, error) {
	query, args, ok := buildUpdateQuery(id, patch)
	if !ok {
		return r.GetByID(ctx, id)
	}

	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return model.User{}, model.ErrConflict
			case pgCheckViolation:
				return model.User{}, model.NewInvalidInputError("value violates constraint %s", pgErr.ConstraintName)
			}
		}
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// Delete removes the user row and, through cascading keys, everything it owns.
// The returned user carries no chat count.
func (r *UserRepository) Delete(ctx context.Context, id string) (model.User, error) {
	query := `DELETE FROM users u WHERE u.id = $1
			  RETURNING ` + userColumns + `, 0::bigint`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to delete user: %w", err)
	}

	return user, nil
}

// SetRoleByEmail grants or revokes a role outside the admin API.
func (r *UserRepository) SetRoleByEmail(ctx context.Context, email string, role model.Role) (model.User, error) {
	user, err := r.GetByEmail(ctx, email)
	if err != nil {
		return model.User{}, err
	}
	return r.Update(ctx, user.ID, model.UserPatch{Role: &role})
}
