package transport

import (
	"time"

	"github.com/taskhub/backend/domain"
)

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
}

type UpdateUserRequest struct {
	Email *string `json:"email" validate:"omitempty,email"`
	Name  *string `json:"name"`
}

type CreateProjectRequest struct {
	UserID      int64  `json:"user_id" validate:"required,gt=0"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,oneof=active completed archived"`
}

type UpdateProjectRequest struct {
	Title       *string                 `json:"title"`
	Description domain.Optional[string] `json:"description"`
	Status      *string                 `json:"status" validate:"omitempty,oneof=active completed archived"`
}

type CreateTaskRequest struct {
	ProjectID   int64      `json:"project_id" validate:"required,gt=0"`
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"due_date"`
}

type UpdateTaskRequest struct {
	Title       *string                    `json:"title"`
	Description domain.Optional[string]    `json:"description"`
	Status      *string                    `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	Priority    *string                    `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     domain.Optional[time.Time] `json:"due_date"`
}
