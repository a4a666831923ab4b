package usecases

import (
	"context"

	"zarya/internal/domain/news"
	"zarya/internal/shared/logger"
)

type mockNewsRepository struct {
	ListArticlesFunc           func(ctx context.Context, page, pageSize int) ([]*news.Article, int64, error)
	ListArticlesByCategoryFunc func(ctx context.Context, categoryID uint, page, pageSize int) ([]*news.Article, int64, error)
	GetArticleBySlugFunc       func(ctx context.Context, slug string) (*news.Article, error)
	ListLatestFunc             func(ctx context.Context, limit int) ([]*news.Article, error)
	ListSimilarFunc            func(ctx context.Context, categoryID, excludeID uint, limit int) ([]*news.Article, error)
	IncrementViewsFunc         func(ctx context.Context, articleID uint) error
	GetCategoryByIDFunc        func(ctx context.Context, id uint) (*news.Category, error)
	GetCategoryBySlugFunc      func(ctx context.Context, slug string) (*news.Category, error)
	ListCategoriesFunc         func(ctx context.Context) ([]*news.Category, error)
	ListMenuCategoriesFunc     func(ctx context.Context) ([]*news.Category, error)
	FindArticleByIDFunc        func(ctx context.Context, id uint) (*news.Article, error)
	SaveArticleFunc            func(ctx context.Context, article *news.Article) error
	DeleteArticleFunc          func(ctx context.Context, id uint) error
	FindCategoryByIDFunc       func(ctx context.Context, id uint) (*news.Category, error)
	SaveCategoryFunc           func(ctx context.Context, category *news.Category) error
	DeleteCategoryFunc         func(ctx context.Context, id uint) error
}

func (m *mockNewsRepository) ListArticles(ctx context.Context, page, pageSize int) ([]*news.Article, int64, error) {
	if m.ListArticlesFunc != nil {
		return m.ListArticlesFunc(ctx, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockNewsRepository) ListArticlesByCategory(ctx context.Context, categoryID uint, page, pageSize int) ([]*news.Article, int64, error) {
	if m.ListArticlesByCategoryFunc != nil {
		return m.ListArticlesByCategoryFunc(ctx, categoryID, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockNewsRepository) GetArticleBySlug(ctx context.Context, slug string) (*news.Article, error) {
	if m.GetArticleBySlugFunc != nil {
		return m.GetArticleBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockNewsRepository) ListLatest(ctx context.Context, limit int) ([]*news.Article, error) {
	if m.ListLatestFunc != nil {
		return m.ListLatestFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockNewsRepository) ListSimilar(ctx context.Context, categoryID, excludeID uint, limit int) ([]*news.Article, error) {
	if m.ListSimilarFunc != nil {
		return m.ListSimilarFunc(ctx, categoryID, excludeID, limit)
	}
	return nil, nil
}

func (m *mockNewsRepository) IncrementViews(ctx context.Context, articleID uint) error {
	if m.IncrementViewsFunc != nil {
		return m.IncrementViewsFunc(ctx, articleID)
	}
	return nil
}

func (m *mockNewsRepository) GetCategoryByID(ctx context.Context, id uint) (*news.Category, error) {
	if m.GetCategoryByIDFunc != nil {
		return m.GetCategoryByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockNewsRepository) GetCategoryBySlug(ctx context.Context, slug string) (*news.Category, error) {
	if m.GetCategoryBySlugFunc != nil {
		return m.GetCategoryBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockNewsRepository) ListCategories(ctx context.Context) ([]*news.Category, error) {
	if m.ListCategoriesFunc != nil {
		return m.ListCategoriesFunc(ctx)
	}
	return nil, nil
}

func (m *mockNewsRepository) ListMenuCategories(ctx context.Context) ([]*news.Category, error) {
	if m.ListMenuCategoriesFunc != nil {
		return m.ListMenuCategoriesFunc(ctx)
	}
	return nil, nil
}

func (m *mockNewsRepository) FindArticleByID(ctx context.Context, id uint) (*news.Article, error) {
	if m.FindArticleByIDFunc != nil {
		return m.FindArticleByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockNewsRepository) SaveArticle(ctx context.Context, article *news.Article) error {
	if m.SaveArticleFunc != nil {
		return m.SaveArticleFunc(ctx, article)
	}
	return nil
}

func (m *mockNewsRepository) DeleteArticle(ctx context.Context, id uint) error {
	if m.DeleteArticleFunc != nil {
		return m.DeleteArticleFunc(ctx, id)
	}
	return nil
}

func (m *mockNewsRepository) FindCategoryByID(ctx context.Context, id uint) (*news.Category, error) {
	if m.FindCategoryByIDFunc != nil {
		return m.FindCategoryByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockNewsRepository) SaveCategory(ctx context.Context, category *news.Category) error {
	if m.SaveCategoryFunc != nil {
		return m.SaveCategoryFunc(ctx, category)
	}
	return nil
}

func (m *mockNewsRepository) DeleteCategory(ctx context.Context, id uint) error {
	if m.DeleteCategoryFunc != nil {
		return m.DeleteCategoryFunc(ctx, id)
	}
	return nil
}

// stubSanitizer records its input and substitutes output when set,
// passing content through otherwise.
type stubSanitizer struct {
	output   string
	gotInput string
}

func (s *stubSanitizer) Sanitize(htmlContent string) string {
	s.gotInput = htmlContent
	if s.output != "" {
		return s.output
	}
	return htmlContent
}

func (s *stubSanitizer) RenderMarkdown(markdown string) (string, error) {
	return markdown, nil
}

type mockLogger struct{}

func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {}
func (m *mockLogger) With(args ...any) logger.Interface       { return m }
