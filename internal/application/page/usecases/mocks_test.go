package usecases

import (
	"context"

	"zarya/internal/domain/page"
	"zarya/internal/shared/logger"
)

type mockPageRepository struct {
	GetBySlugFunc     func(ctx context.Context, slug string) (*page.Page, error)
	ListMenuPagesFunc func(ctx context.Context) ([]*page.Page, error)
	FindByIDFunc      func(ctx context.Context, id uint) (*page.Page, error)
	ListAllFunc       func(ctx context.Context) ([]*page.Page, error)
	SaveFunc          func(ctx context.Context, p *page.Page) error
	DeleteFunc        func(ctx context.Context, id uint) error
	LoadSettingsFunc  func(ctx context.Context) (*page.SiteSettings, error)
	SaveSettingsFunc  func(ctx context.Context, settings *page.SiteSettings) error
}

func (m *mockPageRepository) GetBySlug(ctx context.Context, slug string) (*page.Page, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockPageRepository) ListMenuPages(ctx context.Context) ([]*page.Page, error) {
	if m.ListMenuPagesFunc != nil {
		return m.ListMenuPagesFunc(ctx)
	}
	return nil, nil
}

func (m *mockPageRepository) FindByID(ctx context.Context, id uint) (*page.Page, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPageRepository) ListAll(ctx context.Context) ([]*page.Page, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockPageRepository) Save(ctx context.Context, p *page.Page) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockPageRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockPageRepository) LoadSettings(ctx context.Context) (*page.SiteSettings, error) {
	if m.LoadSettingsFunc != nil {
		return m.LoadSettingsFunc(ctx)
	}
	return nil, nil
}

func (m *mockPageRepository) SaveSettings(ctx context.Context, settings *page.SiteSettings) error {
	if m.SaveSettingsFunc != nil {
		return m.SaveSettingsFunc(ctx, settings)
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
