package usecases

import (
	"context"

	"zarya/internal/application/portfolio/dto"
	"zarya/internal/domain/portfolio"
	"zarya/internal/shared/logger"
)

type ListProjectsQuery struct {
	CategorySlug *string
	Page         int
	PageSize     int
}

type ListProjectsResult struct {
	Projects []dto.ProjectListItemDTO
	Category *dto.CategoryDTO
	Total    int64
}

type ListProjectsUseCase struct {
	portfolioRepo portfolio.Repository
	logger        logger.Interface
}

func NewListProjectsUseCase(portfolioRepo portfolio.Repository, logger logger.Interface) *ListProjectsUseCase {
	return &ListProjectsUseCase{
		portfolioRepo: portfolioRepo,
		logger:        logger,
	}
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context, query ListProjectsQuery) (*ListProjectsResult, error) {
	result := &ListProjectsResult{}

	var (
		projects []*portfolio.Project
		total    int64
		err      error
	)

	if query.CategorySlug != nil {
		category, err := uc.portfolioRepo.GetCategoryBySlug(ctx, *query.CategorySlug)
		if err != nil {
			return nil, err
		}
		categoryDTO := dto.ToCategoryDTO(category)
		result.Category = &categoryDTO

		projects, total, err = uc.portfolioRepo.ListProjectsByCategory(ctx, category.ID, query.Page, query.PageSize)
		if err != nil {
			uc.logger.Errorw("failed to list projects by category", "category_id", category.ID, "error", err)
			return nil, err
		}
	} else {
		projects, total, err = uc.portfolioRepo.ListProjects(ctx, query.Page, query.PageSize)
		if err != nil {
			uc.logger.Errorw("failed to list projects", "error", err)
			return nil, err
		}
	}

	result.Projects = dto.ToProjectListItemDTOs(projects)
	result.Total = total
	return result, nil
}
