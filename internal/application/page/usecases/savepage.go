package usecases

import (
	"context"

	"zarya/internal/application/page/dto"
	"zarya/internal/domain/page"
	apperrors "zarya/internal/shared/errors"
	"zarya/internal/shared/logger"
	"zarya/internal/shared/services/richtext"
)

// SavePageCommand creates a page when ID is zero and updates the
// existing one otherwise.
type SavePageCommand struct {
	ID             uint
	Title          string
	Slug           string
	Content        string
	SEOTitle       string
	SEOKeywords    string
	SEODescription string
	ShowInMenu     bool
	SortOrder      int
	ShowOnSite     bool
}

type SavePageUseCase struct {
	pageRepo page.Repository
	richtext richtext.Service
	logger   logger.Interface
}

func NewSavePageUseCase(pageRepo page.Repository, richtextSvc richtext.Service, logger logger.Interface) *SavePageUseCase {
	return &SavePageUseCase{
		pageRepo: pageRepo,
		richtext: richtextSvc,
		logger:   logger,
	}
}

func (uc *SavePageUseCase) Execute(ctx context.Context, cmd SavePageCommand) (*dto.PageAdminDTO, error) {
	p := &page.Page{
		ID:    cmd.ID,
		Title: cmd.Title,
		Slug:  cmd.Slug,
		// Editor HTML is sanitized before it ever reaches the store.
		Content:        uc.richtext.Sanitize(cmd.Content),
		SEOTitle:       cmd.SEOTitle,
		SEOKeywords:    cmd.SEOKeywords,
		SEODescription: cmd.SEODescription,
		ShowInMenu:     cmd.ShowInMenu,
		SortOrder:      cmd.SortOrder,
		ShowOnSite:     cmd.ShowOnSite,
	}

	if cmd.ID != 0 {
		existing, err := uc.pageRepo.FindByID(ctx, cmd.ID)
		if err != nil {
			return nil, err
		}
		p.CreatedAt = existing.CreatedAt
	}

	if err := p.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	p.EnsureSlug()

	if err := uc.pageRepo.Save(ctx, p); err != nil {
		uc.logger.Errorw("failed to save page", "page_id", cmd.ID, "error", err)
		return nil, err
	}

	return dto.ToPageAdminDTO(p), nil
}
