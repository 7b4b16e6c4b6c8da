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

const projectColumns = "id, user_id, title, description, status, created_at, updated_at"

type projectRepository struct {
	pool *pgxpool.Pool
}

// NewProjectRepository returns a Postgres-backed implementation of ProjectRepository.
func NewProjectRepository(pool *pgxpool.Pool) repository.ProjectRepository {
	return &projectRepository{pool: pool}
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	const query = `
	INSERT INTO projects (user_id, title, description, status)
	VALUES ($1, $2, $3, $4)
	RETURNING id, created_at, updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		project.UserID,
		project.Title,
		project.Description,
		project.Status,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt); err != nil {
		return nil, translateError(err)
	}
	return project, nil
}

func (r *projectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	query := fmt.Sprintf("SELECT %s FROM projects WHERE id = $1", projectColumns)
	return scanProject(r.pool.QueryRow(ctx, query, id))
}

func (r *projectRepository) List(ctx context.Context, filter repository.ProjectFilter, params repository.ListParams) ([]domain.Project, int64, error) {
	qb := newQueryBuilder()
	if filter.UserID != 0 {
		qb.filter("user_id", filter.UserID)
	}
	if filter.Status != "" {
		qb.filter("status", filter.Status)
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM projects " + qb.where()
	if err := r.pool.QueryRow(ctx, countQuery, qb.whereArgs()...).Scan(&total); err != nil {
		return nil, 0, err
	}

	pageClause, args := qb.paginate(params)
	query := fmt.Sprintf(
		"SELECT %s FROM projects %s ORDER BY created_at DESC %s",
		projectColumns, qb.where(), pageClause,
	)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, 0, err
		}
		projects = append(projects, *project)
	}
	return projects, total, rows.Err()
}

func (r *projectRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Project, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM projects WHERE user_id = $1 ORDER BY created_at DESC",
		projectColumns,
	)
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *project)
	}
	return projects, rows.Err()
}

func (r *projectRepository) Update(ctx context.Context, id int64, upd repository.ProjectUpdate) (*domain.Project, error) {
	sb := newSetBuilder()
	if upd.Title != nil && *upd.Title != "" {
		sb.set("title", *upd.Title)
	}
	if upd.Description.Present {
		sb.set("description", upd.Description.Value)
	}
	if upd.Status != nil && *upd.Status != "" {
		sb.set("status", *upd.Status)
	}

	if sb.empty() {
		return r.GetByID(ctx, id)
	}

	query := fmt.Sprintf(
		"UPDATE projects SET %s, updated_at = NOW() WHERE id = $%d RETURNING %s",
		sb.clause(), sb.next(), projectColumns,
	)
	args := append(sb.args, id)

	project, err := scanProject(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translateError(err)
	}
	return project, nil
}

func (r *projectRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM projects WHERE id = $1", id)
	if err != nil {
		return false, translateError(err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var project domain.Project
	if err := row.Scan(
		&project.ID,
		&project.UserID,
		&project.Title,
		&project.Description,
		&project.Status,
		&project.CreatedAt,
		&project.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}
