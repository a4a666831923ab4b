package usecases

import (
	"context"

	"zarya/internal/application/page/dto"
	"zarya/internal/domain/page"
	"zarya/internal/shared/logger"
	"zarya/internal/shared/services/richtext"
)

type GetPageQuery struct {
	Slug string
}

type GetPageUseCase struct {
	pageRepo page.Repository
	richtext richtext.Service
	logger   logger.Interface
}

func NewGetPageUseCase(
	pageRepo page.Repository,
	richtext richtext.Service,
	logger logger.Interface,
) *GetPageUseCase {
	return &GetPageUseCase{
		pageRepo: pageRepo,
		richtext: richtext,
		logger:   logger,
	}
}

func (uc *GetPageUseCase) Execute(ctx context.Context, query GetPageQuery) (*dto.PageDTO, error) {
	p, err := uc.pageRepo.GetBySlug(ctx, query.Slug)
	if err != nil {
		return nil, err
	}

	contentHTML, err := uc.richtext.RenderMarkdown(p.Content)
	if err != nil {
		uc.logger.Errorw("failed to render page content", "page_id", p.ID, "error", err)
		contentHTML = ""
	}

	return &dto.PageDTO{
		ID:             p.ID,
		Title:          p.Title,
		Slug:           p.Slug,
		ContentHTML:    contentHTML,
		SEOTitle:       p.SEOTitle,
		SEOKeywords:    p.SEOKeywords,
		SEODescription: p.SEODescription,
		UpdatedAt:      p.UpdatedAt,
	}, nil
}
