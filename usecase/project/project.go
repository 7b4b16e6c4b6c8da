package project

import (
	"context"

	"go.uber.org/zap"

	"github.com/taskhub/backend/domain"
	"github.com/taskhub/backend/repository"
)

type UseCase struct {
	projects repository.ProjectRepository
	logger   *zap.Logger
}

func New(projects repository.ProjectRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		projects: projects,
		logger:   logger,
	}
}

// Create inserts a project, defaulting the status to active when omitted.
func (uc *UseCase) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	if project.Status == "" {
		project.Status = domain.ProjectStatusActive
	}

	created, err := uc.projects.Create(ctx, project)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("project created", zap.Int64("project_id", created.ID))
	return created, nil
}

func (uc *UseCase) Get(ctx context.Context, id int64) (*domain.Project, error) {
	return uc.projects.GetByID(ctx, id)
}

func (uc *UseCase) List(ctx context.Context, filter repository.ProjectFilter, params repository.ListParams) ([]domain.Project, int64, error) {
	return uc.projects.List(ctx, filter, params)
}

func (uc *UseCase) ListByUser(ctx context.Context, userID int64) ([]domain.Project, error) {
	return uc.projects.ListByUser(ctx, userID)
}

func (uc *UseCase) Update(ctx context.Context, id int64, upd repository.ProjectUpdate) (*domain.Project, error) {
	updated, err := uc.projects.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("project updated", zap.Int64("project_id", id))
	return updated, nil
}

func (uc *UseCase) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := uc.projects.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		uc.logger.Info("project deleted", zap.Int64("project_id", id))
	}
	return deleted, nil
}
