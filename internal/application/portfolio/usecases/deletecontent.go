package usecases

import (
	"context"

	"zarya/internal/domain/portfolio"
	"zarya/internal/shared/db"
	"zarya/internal/shared/logger"
)

type DeleteProjectCommand struct {
	ProjectID uint
}

type DeleteProjectUseCase struct {
	portfolioRepo portfolio.Repository
	logger        logger.Interface
}

func NewDeleteProjectUseCase(portfolioRepo portfolio.Repository, logger logger.Interface) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{
		portfolioRepo: portfolioRepo,
		logger:        logger,
	}
}

func (uc *DeleteProjectUseCase) Execute(ctx context.Context, cmd DeleteProjectCommand) error {
	if err := uc.portfolioRepo.DeleteProject(ctx, cmd.ProjectID); err != nil {
		return err
	}
	uc.logger.Infow("project deleted", "project_id", cmd.ProjectID)
	return nil
}

type DeleteCategoryCommand struct {
	CategoryID uint
}

// DeleteCategoryUseCase removes a category and its projects in one
// transaction.
type DeleteCategoryUseCase struct {
	portfolioRepo portfolio.Repository
	txMgr         *db.TransactionManager
	logger        logger.Interface
}

func NewDeleteCategoryUseCase(portfolioRepo portfolio.Repository, txMgr *db.TransactionManager, logger logger.Interface) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		portfolioRepo: portfolioRepo,
		txMgr:         txMgr,
		logger:        logger,
	}
}

func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, cmd DeleteCategoryCommand) error {
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.portfolioRepo.DeleteCategory(txCtx, cmd.CategoryID)
	})
	if err != nil {
		return err
	}

	uc.logger.Infow("portfolio category deleted", "category_id", cmd.CategoryID)
	return nil
}
