package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskhub/backend/domain"
	"github.com/taskhub/backend/repository"
)

const userColumns = "id, email, password_hash, name, created_at, updated_at"

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation of UserRepository.
func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	const query = `
	INSERT INTO users (email, password_hash, name)
	VALUES ($1, $2, $3)
	RETURNING id, created_at, updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		user.Email,
		user.PasswordHash,
		user.Name,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return nil, translateError(err)
	}
	return user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE id = $1", userColumns)
	return scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) List(ctx context.Context, params repository.ListParams) ([]domain.User, int64, error) {
	qb := newQueryBuilder()

	var total int64
	countQuery := "SELECT COUNT(*) FROM users " + qb.where()
	if err := r.pool.QueryRow(ctx, countQuery, qb.whereArgs()...).Scan(&total); err != nil {
		return nil, 0, err
	}

	pageClause, args := qb.paginate(params)
	query := fmt.Sprintf(
		"SELECT %s FROM users %s ORDER BY created_at DESC %s",
		userColumns, qb.where(), pageClause,
	)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *user)
	}
	return users, total, rows.Err()
}

func (r *userRepository) Update(ctx context.Context, id int64, upd repository.UserUpdate) (*domain.User, error) {
	sb := newSetBuilder()
	if upd.Email != nil && *upd.Email != "" {
		sb.set("email", *upd.Email)
	}
	if upd.Name != nil && *upd.Name != "" {
		sb.set("name", *upd.Name)
	}

	// Empty partial updates are a no-op read, not an error.
	if sb.empty() {
		return r.GetByID(ctx, id)
	}

	query := fmt.Sprintf(
		"UPDATE users SET %s, updated_at = NOW() WHERE id = $%d RETURNING %s",
		sb.clause(), sb.next(), userColumns,
	)
	args := append(sb.args, id)

	user, err := scanUser(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translateError(err)
	}
	return user, nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return false, translateError(err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)", email).Scan(&exists)
	return exists, err
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Name,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
