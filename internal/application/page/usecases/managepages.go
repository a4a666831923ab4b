package usecases

import (
	"context"

	"zarya/internal/application/page/dto"
	"zarya/internal/domain/page"
	"zarya/internal/shared/logger"
)

// ListPagesUseCase returns every page, published or not, for the admin
// listing.
type ListPagesUseCase struct {
	pageRepo page.Repository
	logger   logger.Interface
}

func NewListPagesUseCase(pageRepo page.Repository, logger logger.Interface) *ListPagesUseCase {
	return &ListPagesUseCase{
		pageRepo: pageRepo,
		logger:   logger,
	}
}

func (uc *ListPagesUseCase) Execute(ctx context.Context) ([]dto.PageAdminDTO, error) {
	pages, err := uc.pageRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list pages", "error", err)
		return nil, err
	}
	return dto.ToPageAdminDTOs(pages), nil
}

type DeletePageCommand struct {
	PageID uint
}

type DeletePageUseCase struct {
	pageRepo page.Repository
	logger   logger.Interface
}

func NewDeletePageUseCase(pageRepo page.Repository, logger logger.Interface) *DeletePageUseCase {
	return &DeletePageUseCase{
		pageRepo: pageRepo,
		logger:   logger,
	}
}

func (uc *DeletePageUseCase) Execute(ctx context.Context, cmd DeletePageCommand) error {
	if err := uc.pageRepo.Delete(ctx, cmd.PageID); err != nil {
		return err
	}
	uc.logger.Infow("page deleted", "page_id", cmd.PageID)
	return nil
}
