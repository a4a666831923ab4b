package usecases

import (
	"context"

	"zarya/internal/application/news/dto"
	"zarya/internal/domain/news"
	"zarya/internal/shared/constants"
	"zarya/internal/shared/logger"
	"zarya/internal/shared/services/richtext"
)

type GetArticleQuery struct {
	Slug string
}

type GetArticleUseCase struct {
	newsRepo news.Repository
	richtext richtext.Service
	logger   logger.Interface
}

func NewGetArticleUseCase(
	newsRepo news.Repository,
	richtext richtext.Service,
	logger logger.Interface,
) *GetArticleUseCase {
	return &GetArticleUseCase{
		newsRepo: newsRepo,
		richtext: richtext,
		logger:   logger,
	}
}

func (uc *GetArticleUseCase) Execute(ctx context.Context, query GetArticleQuery) (*dto.ArticleDTO, error) {
	article, err := uc.newsRepo.GetArticleBySlug(ctx, query.Slug)
	if err != nil {
		return nil, err
	}

	category, err := uc.newsRepo.GetCategoryByID(ctx, article.CategoryID)
	if err != nil {
		uc.logger.Errorw("failed to load article category", "article_id", article.ID, "error", err)
		return nil, err
	}

	// View counting is best effort.
	if err := uc.newsRepo.IncrementViews(ctx, article.ID); err != nil {
		uc.logger.Warnw("failed to increment article views", "article_id", article.ID, "error", err)
	} else {
		article.Views++
	}

	similar, err := uc.newsRepo.ListSimilar(ctx, article.CategoryID, article.ID, constants.SimilarItemsLimit)
	if err != nil {
		uc.logger.Warnw("failed to load similar articles", "article_id", article.ID, "error", err)
		similar = nil
	}

	latest, err := uc.newsRepo.ListLatest(ctx, constants.LatestNewsLimit)
	if err != nil {
		uc.logger.Warnw("failed to load latest articles", "error", err)
		latest = nil
	}

	contentHTML, err := uc.richtext.RenderMarkdown(article.Content)
	if err != nil {
		uc.logger.Errorw("failed to render article content", "article_id", article.ID, "error", err)
		contentHTML = ""
	}

	return &dto.ArticleDTO{
		ID:               article.ID,
		Title:            article.Title,
		Slug:             article.Slug,
		Category:         dto.ToCategoryDTO(category),
		ShortDescription: article.ShortDescription,
		ContentHTML:      contentHTML,
		SEOTitle:         article.SEOTitle,
		SEOKeywords:      article.SEOKeywords,
		SEODescription:   article.SEODescription,
		Views:            article.Views,
		CreatedAt:        article.CreatedAt,
		Similar:          dto.ToArticleListItemDTOs(similar),
		Latest:           dto.ToArticleListItemDTOs(latest),
	}, nil
}
