package usecases

import (
	"context"

	"zarya/internal/application/portfolio/dto"
	"zarya/internal/domain/portfolio"
	"zarya/internal/shared/constants"
	"zarya/internal/shared/logger"
	"zarya/internal/shared/services/richtext"
)

type GetProjectQuery struct {
	Slug string
}

type GetProjectUseCase struct {
	portfolioRepo portfolio.Repository
	richtext      richtext.Service
	logger        logger.Interface
}

func NewGetProjectUseCase(
	portfolioRepo portfolio.Repository,
	richtext richtext.Service,
	logger logger.Interface,
) *GetProjectUseCase {
	return &GetProjectUseCase{
		portfolioRepo: portfolioRepo,
		richtext:      richtext,
		logger:        logger,
	}
}

func (uc *GetProjectUseCase) Execute(ctx context.Context, query GetProjectQuery) (*dto.ProjectDTO, error) {
	project, err := uc.portfolioRepo.GetProjectBySlug(ctx, query.Slug)
	if err != nil {
		return nil, err
	}

	category, err := uc.portfolioRepo.GetCategoryByID(ctx, project.CategoryID)
	if err != nil {
		uc.logger.Errorw("failed to load project category", "project_id", project.ID, "error", err)
		return nil, err
	}

	// View counting is best effort.
	if err := uc.portfolioRepo.IncrementViews(ctx, project.ID); err != nil {
		uc.logger.Warnw("failed to increment project views", "project_id", project.ID, "error", err)
	} else {
		project.Views++
	}

	similar, err := uc.portfolioRepo.ListSimilar(ctx, project.CategoryID, project.ID, constants.SimilarItemsLimit)
	if err != nil {
		uc.logger.Warnw("failed to load similar projects", "project_id", project.ID, "error", err)
		similar = nil
	}

	descriptionHTML, err := uc.richtext.RenderMarkdown(project.Description)
	if err != nil {
		uc.logger.Errorw("failed to render project description", "project_id", project.ID, "error", err)
		descriptionHTML = ""
	}

	return &dto.ProjectDTO{
		ID:               project.ID,
		Title:            project.Title,
		Slug:             project.Slug,
		Category:         dto.ToCategoryDTO(category),
		ShortDescription: project.ShortDescription,
		DescriptionHTML:  descriptionHTML,
		ImageURL:         project.ImageURL,
		PriceCents:       project.PriceCents,
		CanOrder:         project.CanOrder,
		SEOTitle:         project.SEOTitle,
		SEOKeywords:      project.SEOKeywords,
		SEODescription:   project.SEODescription,
		Views:            project.Views,
		CreatedAt:        project.CreatedAt,
		Similar:          dto.ToProjectListItemDTOs(similar),
	}, nil
}
