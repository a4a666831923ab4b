package usecases

import (
	"context"

	"zarya/internal/application/portfolio/dto"
	"zarya/internal/domain/portfolio"
	apperrors "zarya/internal/shared/errors"
	"zarya/internal/shared/logger"
	"zarya/internal/shared/services/richtext"
)

// SaveProjectCommand creates a project when ID is zero and updates the
// existing one otherwise.
type SaveProjectCommand struct {
	ID               uint
	Title            string
	Slug             string
	CategoryID       uint
	ShortDescription string
	Description      string
	ImageURL         string
	PriceCents       int64
	CanOrder         bool
	SEOTitle         string
	SEOKeywords      string
	SEODescription   string
	IsActive         bool
}

type SaveProjectUseCase struct {
	portfolioRepo portfolio.Repository
	richtext      richtext.Service
	logger        logger.Interface
}

func NewSaveProjectUseCase(portfolioRepo portfolio.Repository, richtextSvc richtext.Service, logger logger.Interface) *SaveProjectUseCase {
	return &SaveProjectUseCase{
		portfolioRepo: portfolioRepo,
		richtext:      richtextSvc,
		logger:        logger,
	}
}

func (uc *SaveProjectUseCase) Execute(ctx context.Context, cmd SaveProjectCommand) (*dto.ProjectAdminDTO, error) {
	if _, err := uc.portfolioRepo.FindCategoryByID(ctx, cmd.CategoryID); err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewValidationError("unknown category")
		}
		return nil, err
	}

	project := &portfolio.Project{
		ID:               cmd.ID,
		Title:            cmd.Title,
		Slug:             cmd.Slug,
		CategoryID:       cmd.CategoryID,
		ShortDescription: cmd.ShortDescription,
		// Editor HTML is sanitized before it ever reaches the store.
		Description:      uc.richtext.Sanitize(cmd.Description),
		ImageURL:         cmd.ImageURL,
		PriceCents:       cmd.PriceCents,
		CanOrder:         cmd.CanOrder,
		SEOTitle:         cmd.SEOTitle,
		SEOKeywords:      cmd.SEOKeywords,
		SEODescription:   cmd.SEODescription,
		IsActive:         cmd.IsActive,
	}

	if cmd.ID != 0 {
		existing, err := uc.portfolioRepo.FindProjectByID(ctx, cmd.ID)
		if err != nil {
			return nil, err
		}
		// Counters and timestamps survive edits.
		project.Views = existing.Views
		project.CreatedAt = existing.CreatedAt
	}

	if err := project.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	project.EnsureSlug()

	if err := uc.portfolioRepo.SaveProject(ctx, project); err != nil {
		uc.logger.Errorw("failed to save project", "project_id", cmd.ID, "error", err)
		return nil, err
	}

	return dto.ToProjectAdminDTO(project), nil
}
