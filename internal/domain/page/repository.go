package page

import "context"

type Repository interface {
	// GetBySlug returns a page only when it is published on the site.
	GetBySlug(ctx context.Context, slug string) (*Page, error)
	ListMenuPages(ctx context.Context) ([]*Page, error)

	// Write side used by the staff admin surface; lookups here ignore
	// the published flag.
	FindByID(ctx context.Context, id uint) (*Page, error)
	ListAll(ctx context.Context) ([]*Page, error)
	Save(ctx context.Context, p *Page) error
	Delete(ctx context.Context, id uint) error

	// LoadSettings returns the singleton settings row, creating it with
	// defaults when missing.
	LoadSettings(ctx context.Context) (*SiteSettings, error)
	SaveSettings(ctx context.Context, settings *SiteSettings) error
}
