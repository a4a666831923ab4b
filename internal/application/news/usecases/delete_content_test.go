package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"zarya/internal/shared/db"
	apperrors "zarya/internal/shared/errors"
)

func newTestTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db.NewTransactionManager(gdb)
}

func TestDeleteArticle_Success(t *testing.T) {
	var deleted uint
	repo := &mockNewsRepository{
		DeleteArticleFunc: func(ctx context.Context, id uint) error {
			deleted = id
			return nil
		},
	}
	uc := NewDeleteArticleUseCase(repo, &mockLogger{})

	err := uc.Execute(context.Background(), DeleteArticleCommand{ArticleID: 42})
	require.NoError(t, err)
	assert.Equal(t, uint(42), deleted)
}

func TestDeleteArticle_NotFound(t *testing.T) {
	repo := &mockNewsRepository{
		DeleteArticleFunc: func(ctx context.Context, id uint) error {
			return apperrors.NewNotFoundError("article not found")
		},
	}
	uc := NewDeleteArticleUseCase(repo, &mockLogger{})

	err := uc.Execute(context.Background(), DeleteArticleCommand{ArticleID: 404})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestDeleteCategory_RunsInsideTransaction(t *testing.T) {
	var sawTx bool
	repo := &mockNewsRepository{
		DeleteCategoryFunc: func(ctx context.Context, id uint) error {
			sawTx = db.GetTxFromContext(ctx, nil) != nil
			return nil
		},
	}
	uc := NewDeleteCategoryUseCase(repo, newTestTxManager(t), &mockLogger{})

	err := uc.Execute(context.Background(), DeleteCategoryCommand{CategoryID: 3})
	require.NoError(t, err)
	assert.True(t, sawTx)
}

func TestDeleteCategory_NotFoundRollsBack(t *testing.T) {
	repo := &mockNewsRepository{
		DeleteCategoryFunc: func(ctx context.Context, id uint) error {
			return apperrors.NewNotFoundError("category not found")
		},
	}
	uc := NewDeleteCategoryUseCase(repo, newTestTxManager(t), &mockLogger{})

	err := uc.Execute(context.Background(), DeleteCategoryCommand{CategoryID: 404})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}
