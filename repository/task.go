package repository

import (
	"context"
	"time"

	"github.com/taskhub/backend/domain"
)

// TaskFilter narrows task listings. Zero values mean "no filter".
type TaskFilter struct {
	ProjectID int64
	Status    string
	Priority  string
}

// TaskUpdate carries the fields of a partial task update. Description and
// DueDate are nullable on the wire: an explicit empty or null value still
// counts as a change.
type TaskUpdate struct {
	Title       *string
	Description domain.Optional[string]
	Status      *string
	Priority    *string
	DueDate     domain.Optional[time.Time]
}

func (u TaskUpdate) HasChanges() bool {
	return (u.Title != nil && *u.Title != "") ||
		u.Description.Present ||
		(u.Status != nil && *u.Status != "") ||
		(u.Priority != nil && *u.Priority != "") ||
		u.DueDate.Present
}

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	List(ctx context.Context, filter TaskFilter, params ListParams) ([]domain.Task, int64, error)
	ListByProject(ctx context.Context, projectID int64) ([]domain.Task, error)
	Update(ctx context.Context, id int64, upd TaskUpdate) (*domain.Task, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
