package usecases

import (
	"context"

	"zarya/internal/application/page/dto"
	"zarya/internal/domain/page"
	"zarya/internal/shared/logger"
)

type SiteChromeResult struct {
	Settings  *dto.SiteSettingsDTO
	MenuPages []dto.MenuPageDTO
}

// GetSiteChromeUseCase assembles the data every public page needs: the
// settings singleton and the menu page list.
type GetSiteChromeUseCase struct {
	pageRepo page.Repository
	logger   logger.Interface
}

func NewGetSiteChromeUseCase(pageRepo page.Repository, logger logger.Interface) *GetSiteChromeUseCase {
	return &GetSiteChromeUseCase{
		pageRepo: pageRepo,
		logger:   logger,
	}
}

func (uc *GetSiteChromeUseCase) Execute(ctx context.Context) (*SiteChromeResult, error) {
	settings, err := uc.pageRepo.LoadSettings(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load site settings", "error", err)
		return nil, err
	}

	menuPages, err := uc.pageRepo.ListMenuPages(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load menu pages", "error", err)
		return nil, err
	}

	return &SiteChromeResult{
		Settings:  dto.ToSiteSettingsDTO(settings),
		MenuPages: dto.ToMenuPageDTOs(menuPages),
	}, nil
}
