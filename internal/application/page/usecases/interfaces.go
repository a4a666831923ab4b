package usecases

import (
	"context"

	"zarya/internal/application/page/dto"
)

type GetPageExecutor interface {
	Execute(ctx context.Context, query GetPageQuery) (*dto.PageDTO, error)
}

type GetSiteChromeExecutor interface {
	Execute(ctx context.Context) (*SiteChromeResult, error)
}

type ListPagesExecutor interface {
	Execute(ctx context.Context) ([]dto.PageAdminDTO, error)
}

type SavePageExecutor interface {
	Execute(ctx context.Context, cmd SavePageCommand) (*dto.PageAdminDTO, error)
}

type DeletePageExecutor interface {
	Execute(ctx context.Context, cmd DeletePageCommand) error
}

type UpdateSettingsExecutor interface {
	Execute(ctx context.Context, cmd UpdateSettingsCommand) (*dto.SiteSettingsDTO, error)
}
