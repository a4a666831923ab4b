package usecases

import (
	"context"

	"zarya/internal/application/portfolio/dto"
	"zarya/internal/domain/portfolio"
	apperrors "zarya/internal/shared/errors"
	"zarya/internal/shared/logger"
)

type SaveCategoryCommand struct {
	ID          uint
	Name        string
	Slug        string
	Description string
	ShowInMenu  bool
	SortOrder   int
	IsActive    bool
}

type SaveCategoryUseCase struct {
	portfolioRepo portfolio.Repository
	logger        logger.Interface
}

func NewSaveCategoryUseCase(portfolioRepo portfolio.Repository, logger logger.Interface) *SaveCategoryUseCase {
	return &SaveCategoryUseCase{
		portfolioRepo: portfolioRepo,
		logger:        logger,
	}
}

func (uc *SaveCategoryUseCase) Execute(ctx context.Context, cmd SaveCategoryCommand) (*dto.CategoryAdminDTO, error) {
	if cmd.ID != 0 {
		if _, err := uc.portfolioRepo.FindCategoryByID(ctx, cmd.ID); err != nil {
			return nil, err
		}
	}

	category := &portfolio.Category{
		ID:          cmd.ID,
		Name:        cmd.Name,
		Slug:        cmd.Slug,
		Description: cmd.Description,
		ShowInMenu:  cmd.ShowInMenu,
		SortOrder:   cmd.SortOrder,
		IsActive:    cmd.IsActive,
	}

	if err := category.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	category.EnsureSlug()

	if err := uc.portfolioRepo.SaveCategory(ctx, category); err != nil {
		uc.logger.Errorw("failed to save portfolio category", "category_id", cmd.ID, "error", err)
		return nil, err
	}

	return dto.ToCategoryAdminDTO(category), nil
}
