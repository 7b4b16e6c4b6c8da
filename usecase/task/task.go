package task

import (
	"context"

	"go.uber.org/zap"

	"github.com/taskhub/backend/domain"
	"github.com/taskhub/backend/repository"
)

type UseCase struct {
	tasks  repository.TaskRepository
	logger *zap.Logger
}

func New(tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		logger: logger,
	}
}

// Create inserts a task, substituting the documented defaults for omitted
// enum fields.
func (uc *UseCase) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task.Status == "" {
		task.Status = domain.TaskStatusTodo
	}
	if task.Priority == "" {
		task.Priority = domain.TaskPriorityMedium
	}

	created, err := uc.tasks.Create(ctx, task)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("task created", zap.Int64("task_id", created.ID))
	return created, nil
}

func (uc *UseCase) Get(ctx context.Context, id int64) (*domain.Task, error) {
	return uc.tasks.GetByID(ctx, id)
}

func (uc *UseCase) List(ctx context.Context, filter repository.TaskFilter, params repository.ListParams) ([]domain.Task, int64, error) {
	return uc.tasks.List(ctx, filter, params)
}

func (uc *UseCase) ListByProject(ctx context.Context, projectID int64) ([]domain.Task, error) {
	return uc.tasks.ListByProject(ctx, projectID)
}

func (uc *UseCase) Update(ctx context.Context, id int64, upd repository.TaskUpdate) (*domain.Task, error) {
	updated, err := uc.tasks.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("task updated", zap.Int64("task_id", id))
	return updated, nil
}

func (uc *UseCase) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := uc.tasks.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		uc.logger.Info("task deleted", zap.Int64("task_id", id))
	}
	return deleted, nil
}
