package usecases

import (
	"context"

	"zarya/internal/application/news/dto"
	"zarya/internal/domain/news"
	"zarya/internal/shared/logger"
)

type ListArticlesQuery struct {
	CategorySlug *string
	Page         int
	PageSize     int
}

type ListArticlesResult struct {
	Articles []dto.ArticleListItemDTO
	Category *dto.CategoryDTO
	Total    int64
}

type ListArticlesUseCase struct {
	newsRepo news.Repository
	logger   logger.Interface
}

func NewListArticlesUseCase(newsRepo news.Repository, logger logger.Interface) *ListArticlesUseCase {
	return &ListArticlesUseCase{
		newsRepo: newsRepo,
		logger:   logger,
	}
}

func (uc *ListArticlesUseCase) Execute(ctx context.Context, query ListArticlesQuery) (*ListArticlesResult, error) {
	result := &ListArticlesResult{}

	var (
		articles []*news.Article
		total    int64
		err      error
	)

	if query.CategorySlug != nil {
		category, err := uc.newsRepo.GetCategoryBySlug(ctx, *query.CategorySlug)
		if err != nil {
			return nil, err
		}
		categoryDTO := dto.ToCategoryDTO(category)
		result.Category = &categoryDTO

		articles, total, err = uc.newsRepo.ListArticlesByCategory(ctx, category.ID, query.Page, query.PageSize)
		if err != nil {
			uc.logger.Errorw("failed to list articles by category", "category_id", category.ID, "error", err)
			return nil, err
		}
	} else {
		articles, total, err = uc.newsRepo.ListArticles(ctx, query.Page, query.PageSize)
		if err != nil {
			uc.logger.Errorw("failed to list articles", "error", err)
			return nil, err
		}
	}

	result.Articles = dto.ToArticleListItemDTOs(articles)
	result.Total = total
	return result, nil
}
