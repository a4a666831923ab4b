package news

import "context"

// Repository exposes the news catalog. The read-side methods only see
// active rows; the write side below serves the staff admin surface and
// ignores the active flag.
type Repository interface {
	ListArticles(ctx context.Context, page, pageSize int) ([]*Article, int64, error)
	ListArticlesByCategory(ctx context.Context, categoryID uint, page, pageSize int) ([]*Article, int64, error)
	GetArticleBySlug(ctx context.Context, slug string) (*Article, error)
	ListLatest(ctx context.Context, limit int) ([]*Article, error)
	// ListSimilar returns up to limit other active articles from the same
	// category, newest first.
	ListSimilar(ctx context.Context, categoryID, excludeID uint, limit int) ([]*Article, error)
	// IncrementViews bumps the view counter atomically in the store.
	IncrementViews(ctx context.Context, articleID uint) error

	GetCategoryByID(ctx context.Context, id uint) (*Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*Category, error)
	ListCategories(ctx context.Context) ([]*Category, error)
	ListMenuCategories(ctx context.Context) ([]*Category, error)

	// FindArticleByID loads an article regardless of its active flag.
	FindArticleByID(ctx context.Context, id uint) (*Article, error)
	// SaveArticle creates the article when its ID is zero and updates it
	// otherwise, assigning the generated ID back on create.
	SaveArticle(ctx context.Context, article *Article) error
	DeleteArticle(ctx context.Context, id uint) error

	FindCategoryByID(ctx context.Context, id uint) (*Category, error)
	SaveCategory(ctx context.Context, category *Category) error
	// DeleteCategory removes the category together with its articles.
	DeleteCategory(ctx context.Context, id uint) error
}
