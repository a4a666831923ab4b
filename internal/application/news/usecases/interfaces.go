package usecases

import (
	"context"

	"zarya/internal/application/news/dto"
)

type ListArticlesExecutor interface {
	Execute(ctx context.Context, query ListArticlesQuery) (*ListArticlesResult, error)
}

type GetArticleExecutor interface {
	Execute(ctx context.Context, query GetArticleQuery) (*dto.ArticleDTO, error)
}

type SaveArticleExecutor interface {
	Execute(ctx context.Context, cmd SaveArticleCommand) (*dto.ArticleAdminDTO, error)
}

type DeleteArticleExecutor interface {
	Execute(ctx context.Context, cmd DeleteArticleCommand) error
}

type SaveCategoryExecutor interface {
	Execute(ctx context.Context, cmd SaveCategoryCommand) (*dto.CategoryAdminDTO, error)
}

type DeleteCategoryExecutor interface {
	Execute(ctx context.Context, cmd DeleteCategoryCommand) error
}
