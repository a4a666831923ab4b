package usecases

import (
	"context"

	"zarya/internal/domain/portfolio"
	"zarya/internal/shared/logger"
)

type mockPortfolioRepository struct {
	ListProjectsFunc           func(ctx context.Context, page, pageSize int) ([]*portfolio.Project, int64, error)
	ListProjectsByCategoryFunc func(ctx context.Context, categoryID uint, page, pageSize int) ([]*portfolio.Project, int64, error)
	GetProjectBySlugFunc       func(ctx context.Context, slug string) (*portfolio.Project, error)
	ListSimilarFunc            func(ctx context.Context, categoryID, excludeID uint, limit int) ([]*portfolio.Project, error)
	IncrementViewsFunc         func(ctx context.Context, projectID uint) error
	GetCategoryByIDFunc        func(ctx context.Context, id uint) (*portfolio.Category, error)
	GetCategoryBySlugFunc      func(ctx context.Context, slug string) (*portfolio.Category, error)
	ListCategoriesFunc         func(ctx context.Context) ([]*portfolio.Category, error)
	ListMenuCategoriesFunc     func(ctx context.Context) ([]*portfolio.Category, error)
	FindProjectByIDFunc        func(ctx context.Context, id uint) (*portfolio.Project, error)
	SaveProjectFunc            func(ctx context.Context, project *portfolio.Project) error
	DeleteProjectFunc          func(ctx context.Context, id uint) error
	FindCategoryByIDFunc       func(ctx context.Context, id uint) (*portfolio.Category, error)
	SaveCategoryFunc           func(ctx context.Context, category *portfolio.Category) error
	DeleteCategoryFunc         func(ctx context.Context, id uint) error
}

func (m *mockPortfolioRepository) ListProjects(ctx context.Context, page, pageSize int) ([]*portfolio.Project, int64, error) {
	if m.ListProjectsFunc != nil {
		return m.ListProjectsFunc(ctx, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockPortfolioRepository) ListProjectsByCategory(ctx context.Context, categoryID uint, page, pageSize int) ([]*portfolio.Project, int64, error) {
	if m.ListProjectsByCategoryFunc != nil {
		return m.ListProjectsByCategoryFunc(ctx, categoryID, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockPortfolioRepository) GetProjectBySlug(ctx context.Context, slug string) (*portfolio.Project, error) {
	if m.GetProjectBySlugFunc != nil {
		return m.GetProjectBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockPortfolioRepository) ListSimilar(ctx context.Context, categoryID, excludeID uint, limit int) ([]*portfolio.Project, error) {
	if m.ListSimilarFunc != nil {
		return m.ListSimilarFunc(ctx, categoryID, excludeID, limit)
	}
	return nil, nil
}

func (m *mockPortfolioRepository) IncrementViews(ctx context.Context, projectID uint) error {
	if m.IncrementViewsFunc != nil {
		return m.IncrementViewsFunc(ctx, projectID)
	}
	return nil
}

func (m *mockPortfolioRepository) GetCategoryByID(ctx context.Context, id uint) (*portfolio.Category, error) {
	if m.GetCategoryByIDFunc != nil {
		return m.GetCategoryByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPortfolioRepository) GetCategoryBySlug(ctx context.Context, slug string) (*portfolio.Category, error) {
	if m.GetCategoryBySlugFunc != nil {
		return m.GetCategoryBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockPortfolioRepository) ListCategories(ctx context.Context) ([]*portfolio.Category, error) {
	if m.ListCategoriesFunc != nil {
		return m.ListCategoriesFunc(ctx)
	}
	return nil, nil
}

func (m *mockPortfolioRepository) ListMenuCategories(ctx context.Context) ([]*portfolio.Category, error) {
	if m.ListMenuCategoriesFunc != nil {
		return m.ListMenuCategoriesFunc(ctx)
	}
	return nil, nil
}

func (m *mockPortfolioRepository) FindProjectByID(ctx context.Context, id uint) (*portfolio.Project, error) {
	if m.FindProjectByIDFunc != nil {
		return m.FindProjectByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPortfolioRepository) SaveProject(ctx context.Context, project *portfolio.Project) error {
	if m.SaveProjectFunc != nil {
		return m.SaveProjectFunc(ctx, project)
	}
	return nil
}

func (m *mockPortfolioRepository) DeleteProject(ctx context.Context, id uint) error {
	if m.DeleteProjectFunc != nil {
		return m.DeleteProjectFunc(ctx, id)
	}
	return nil
}

func (m *mockPortfolioRepository) FindCategoryByID(ctx context.Context, id uint) (*portfolio.Category, error) {
	if m.FindCategoryByIDFunc != nil {
		return m.FindCategoryByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPortfolioRepository) SaveCategory(ctx context.Context, category *portfolio.Category) error {
	if m.SaveCategoryFunc != nil {
		return m.SaveCategoryFunc(ctx, category)
	}
	return nil
}

func (m *mockPortfolioRepository) DeleteCategory(ctx context.Context, id uint) error {
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
