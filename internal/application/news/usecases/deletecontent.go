package usecases

import (
	"context"

	"zarya/internal/domain/news"
	"zarya/internal/shared/db"
	"zarya/internal/shared/logger"
)

type DeleteArticleCommand struct {
	ArticleID uint
}

type DeleteArticleUseCase struct {
	newsRepo news.Repository
	logger   logger.Interface
}

func NewDeleteArticleUseCase(newsRepo news.Repository, logger logger.Interface) *DeleteArticleUseCase {
	return &DeleteArticleUseCase{
		newsRepo: newsRepo,
		logger:   logger,
	}
}

func (uc *DeleteArticleUseCase) Execute(ctx context.Context, cmd DeleteArticleCommand) error {
	if err := uc.newsRepo.DeleteArticle(ctx, cmd.ArticleID); err != nil {
		return err
	}
	uc.logger.Infow("article deleted", "article_id", cmd.ArticleID)
	return nil
}

type DeleteCategoryCommand struct {
	CategoryID uint
}

// DeleteCategoryUseCase removes a category and its articles in one
// transaction.
type DeleteCategoryUseCase struct {
	newsRepo news.Repository
	txMgr    *db.TransactionManager
	logger   logger.Interface
}

func NewDeleteCategoryUseCase(newsRepo news.Repository, txMgr *db.TransactionManager, logger logger.Interface) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		newsRepo: newsRepo,
		txMgr:    txMgr,
		logger:   logger,
	}
}

func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, cmd DeleteCategoryCommand) error {
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.newsRepo.DeleteCategory(txCtx, cmd.CategoryID)
	})
	if err != nil {
		return err
	}

	uc.logger.Infow("news category deleted", "category_id", cmd.CategoryID)
	return nil
}
