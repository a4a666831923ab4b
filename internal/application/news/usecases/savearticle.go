package usecases

import (
	"context"

	"zarya/internal/application/news/dto"
	"zarya/internal/domain/news"
	apperrors "zarya/internal/shared/errors"
	"zarya/internal/shared/logger"
	"zarya/internal/shared/services/richtext"
)

// SaveArticleCommand creates an article when ID is zero and updates the
// existing one otherwise.
type SaveArticleCommand struct {
	ID               uint
	Title            string
	Slug             string
	CategoryID       uint
	ShortDescription string
	Content          string
	SEOTitle         string
	SEOKeywords      string
	SEODescription   string
	IsActive         bool
}

type SaveArticleUseCase struct {
	newsRepo news.Repository
	richtext richtext.Service
	logger   logger.Interface
}

func NewSaveArticleUseCase(newsRepo news.Repository, richtextSvc richtext.Service, logger logger.Interface) *SaveArticleUseCase {
	return &SaveArticleUseCase{
		newsRepo: newsRepo,
		richtext: richtextSvc,
		logger:   logger,
	}
}

func (uc *SaveArticleUseCase) Execute(ctx context.Context, cmd SaveArticleCommand) (*dto.ArticleAdminDTO, error) {
	if _, err := uc.newsRepo.FindCategoryByID(ctx, cmd.CategoryID); err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewValidationError("unknown category")
		}
		return nil, err
	}

	article := &news.Article{
		ID:               cmd.ID,
		Title:            cmd.Title,
		Slug:             cmd.Slug,
		CategoryID:       cmd.CategoryID,
		ShortDescription: cmd.ShortDescription,
		// Editor HTML is sanitized before it ever reaches the store.
		Content:          uc.richtext.Sanitize(cmd.Content),
		SEOTitle:         cmd.SEOTitle,
		SEOKeywords:      cmd.SEOKeywords,
		SEODescription:   cmd.SEODescription,
		IsActive:         cmd.IsActive,
	}

	if cmd.ID != 0 {
		existing, err := uc.newsRepo.FindArticleByID(ctx, cmd.ID)
		if err != nil {
			return nil, err
		}
		// Counters and timestamps survive edits.
		article.Views = existing.Views
		article.CreatedAt = existing.CreatedAt
	}

	if err := article.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	article.EnsureSlug()

	if err := uc.newsRepo.SaveArticle(ctx, article); err != nil {
		uc.logger.Errorw("failed to save article", "article_id", cmd.ID, "error", err)
		return nil, err
	}

	return dto.ToArticleAdminDTO(article), nil
}
