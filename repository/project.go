package repository

import (
	"context"

	"github.com/taskhub/backend/domain"
)

// ProjectFilter narrows project listings. Zero values mean "no filter".
type ProjectFilter struct {
	UserID int64
	Status string
}

// ProjectUpdate carries the fields of a partial project update. Description
// is nullable on the wire: an explicit empty value still counts as a change.
type ProjectUpdate struct {
	Title       *string
	Description domain.Optional[string]
	Status      *string
}

func (u ProjectUpdate) HasChanges() bool {
	return (u.Title != nil && *u.Title != "") ||
		u.Description.Present ||
		(u.Status != nil && *u.Status != "")
}

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context, filter ProjectFilter, params ListParams) ([]domain.Project, int64, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Project, error)
	Update(ctx context.Context, id int64, upd ProjectUpdate) (*domain.Project, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
