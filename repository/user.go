package repository

import (
	"context"

	"github.com/taskhub/backend/domain"
)

// UserUpdate carries the fields of a partial user update. Nil or empty
// pointers leave the column untouched.
type UserUpdate struct {
	Email *string
	Name  *string
}

// HasChanges reports whether the update would touch any column.
func (u UserUpdate) HasChanges() bool {
	return (u.Email != nil && *u.Email != "") || (u.Name != nil && *u.Name != "")
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context, params ListParams) ([]domain.User, int64, error)
	Update(ctx context.Context, id int64, upd UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id int64) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}
