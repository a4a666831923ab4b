package portfolio

import "context"

type Repository interface {
	ListProjects(ctx context.Context, page, pageSize int) ([]*Project, int64, error)
	ListProjectsByCategory(ctx context.Context, categoryID uint, page, pageSize int) ([]*Project, int64, error)
	GetProjectBySlug(ctx context.Context, slug string) (*Project, error)
	ListSimilar(ctx context.Context, categoryID, excludeID uint, limit int) ([]*Project, error)
	IncrementViews(ctx context.Context, projectID uint) error

	GetCategoryByID(ctx context.Context, id uint) (*Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*Category, error)
	ListCategories(ctx context.Context) ([]*Category, error)
	ListMenuCategories(ctx context.Context) ([]*Category, error)

	// Write side used by the staff admin surface; lookups here ignore
	// the active flag.
	FindProjectByID(ctx context.Context, id uint) (*Project, error)
	SaveProject(ctx context.Context, project *Project) error
	DeleteProject(ctx context.Context, id uint) error

	FindCategoryByID(ctx context.Context, id uint) (*Category, error)
	SaveCategory(ctx context.Context, category *Category) error
	// DeleteCategory removes the category together with its projects.
	DeleteCategory(ctx context.Context, id uint) error
}
