package usecases

import (
	"context"

	"zarya/internal/application/portfolio/dto"
)

type ListProjectsExecutor interface {
	Execute(ctx context.Context, query ListProjectsQuery) (*ListProjectsResult, error)
}

type GetProjectExecutor interface {
	Execute(ctx context.Context, query GetProjectQuery) (*dto.ProjectDTO, error)
}

type SaveProjectExecutor interface {
	Execute(ctx context.Context, cmd SaveProjectCommand) (*dto.ProjectAdminDTO, error)
}

type DeleteProjectExecutor interface {
	Execute(ctx context.Context, cmd DeleteProjectCommand) error
}

type SaveCategoryExecutor interface {
	Execute(ctx context.Context, cmd SaveCategoryCommand) (*dto.CategoryAdminDTO, error)
}

type DeleteCategoryExecutor interface {
	Execute(ctx context.Context, cmd DeleteCategoryCommand) error
}
