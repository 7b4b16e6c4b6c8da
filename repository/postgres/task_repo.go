package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskhub/backend/domain"
	"github.com/taskhub/backend/repository"
)

const taskColumns = "id, project_id, title, description, status, priority, due_date, created_at, updated_at"

// taskOrder ranks tasks by urgency: high priority first, nearest due date
// next (tasks without one sort last), newest creation as the final tiebreak.
const taskOrder = `ORDER BY
	CASE priority WHEN 'high' THEN 1 WHEN 'medium' THEN 2 WHEN 'low' THEN 3 END,
	due_date ASC NULLS LAST,
	created_at DESC`

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository returns a Postgres-backed implementation of TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) repository.TaskRepository {
	return &taskRepository{pool: pool}
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	const query = `
	INSERT INTO tasks (project_id, title, description, status, priority, due_date)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, created_at, updated_at
	`

	var due any
	if task.DueDate != nil {
		due = *task.DueDate
	}

	if err := r.pool.QueryRow(ctx, query,
		task.ProjectID,
		task.Title,
		task.Description,
		task.Status,
		task.Priority,
		due,
	).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt); err != nil {
		return nil, translateError(err)
	}
	return task, nil
}

func (r *taskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE id = $1", taskColumns)
	return scanTask(r.pool.QueryRow(ctx, query, id))
}

func (r *taskRepository) List(ctx context.Context, filter repository.TaskFilter, params repository.ListParams) ([]domain.Task, int64, error) {
	qb := newQueryBuilder()
	if filter.ProjectID != 0 {
		qb.filter("project_id", filter.ProjectID)
	}
	if filter.Status != "" {
		qb.filter("status", filter.Status)
	}
	if filter.Priority != "" {
		qb.filter("priority", filter.Priority)
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM tasks " + qb.where()
	if err := r.pool.QueryRow(ctx, countQuery, qb.whereArgs()...).Scan(&total); err != nil {
		return nil, 0, err
	}

	pageClause, args := qb.paginate(params)
	query := fmt.Sprintf(
		"SELECT %s FROM tasks %s %s %s",
		taskColumns, qb.where(), taskOrder, pageClause,
	)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, 0, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, total, rows.Err()
}

func (r *taskRepository) ListByProject(ctx context.Context, projectID int64) ([]domain.Task, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM tasks WHERE project_id = $1 %s",
		taskColumns, taskOrder,
	)
	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) Update(ctx context.Context, id int64, upd repository.TaskUpdate) (*domain.Task, error) {
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
	if upd.Priority != nil && *upd.Priority != "" {
		sb.set("priority", *upd.Priority)
	}
	if upd.DueDate.Present {
		var due any
		if upd.DueDate.Valid {
			due = upd.DueDate.Value
		}
		sb.set("due_date", due)
	}

	if sb.empty() {
		return r.GetByID(ctx, id)
	}

	query := fmt.Sprintf(
		"UPDATE tasks SET %s, updated_at = NOW() WHERE id = $%d RETURNING %s",
		sb.clause(), sb.next(), taskColumns,
	)
	args := append(sb.args, id)

	task, err := scanTask(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translateError(err)
	}
	return task, nil
}

func (r *taskRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM tasks WHERE id = $1", id)
	if err != nil {
		return false, translateError(err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var task domain.Task
	var due *time.Time

	if err := row.Scan(
		&task.ID,
		&task.ProjectID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.Priority,
		&due,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}

	task.DueDate = due
	return &task, nil
}
