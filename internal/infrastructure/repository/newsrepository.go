package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"zarya/internal/domain/news"
	"zarya/internal/infrastructure/persistence/mappers"
	"zarya/internal/infrastructure/persistence/models"
	"zarya/internal/shared/db"
	apperrors "zarya/internal/shared/errors"
)

type NewsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(gdb *gorm.DB) *NewsRepository {
	return &NewsRepository{db: gdb}
}

func (r *NewsRepository) ListArticles(ctx context.Context, page, pageSize int) ([]*news.Article, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ArticleModel{}).Where("is_active = ?", true)
	return r.listArticles(query, page, pageSize)
}

func (r *NewsRepository) ListArticlesByCategory(ctx context.Context, categoryID uint, page, pageSize int) ([]*news.Article, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ArticleModel{}).
		Where("is_active = ? AND category_id = ?", true, categoryID)
	return r.listArticles(query, page, pageSize)
}

func (r *NewsRepository) listArticles(query *gorm.DB, page, pageSize int) ([]*news.Article, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewInternalError("failed to count articles")
	}

	var articleModels []models.ArticleModel
	offset := (page - 1) * pageSize
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&articleModels).Error; err != nil {
		return nil, 0, apperrors.NewInternalError("failed to list articles")
	}

	articles := make([]*news.Article, 0, len(articleModels))
	for i := range articleModels {
		articles = append(articles, mappers.ArticleToDomain(&articleModels[i]))
	}

	return articles, total, nil
}

func (r *NewsRepository) GetArticleBySlug(ctx context.Context, slug string) (*news.Article, error) {
	var model models.ArticleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("slug = ? AND is_active = ?", slug, true).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("article not found")
		}
		return nil, apperrors.NewInternalError("failed to load article")
	}

	return mappers.ArticleToDomain(&model), nil
}

func (r *NewsRepository) ListLatest(ctx context.Context, limit int) ([]*news.Article, error) {
	var articleModels []models.ArticleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("is_active = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&articleModels).Error; err != nil {
		return nil, apperrors.NewInternalError("failed to list latest articles")
	}

	articles := make([]*news.Article, 0, len(articleModels))
	for i := range articleModels {
		articles = append(articles, mappers.ArticleToDomain(&articleModels[i]))
	}
	return articles, nil
}

func (r *NewsRepository) ListSimilar(ctx context.Context, categoryID, excludeID uint, limit int) ([]*news.Article, error) {
	var articleModels []models.ArticleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("is_active = ? AND category_id = ? AND id <> ?", true, categoryID, excludeID).
		Order("created_at DESC").
		Limit(limit).
		Find(&articleModels).Error; err != nil {
		return nil, apperrors.NewInternalError("failed to list similar articles")
	}

	articles := make([]*news.Article, 0, len(articleModels))
	for i := range articleModels {
		articles = append(articles, mappers.ArticleToDomain(&articleModels[i]))
	}
	return articles, nil
}

func (r *NewsRepository) IncrementViews(ctx context.Context, articleID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.ArticleModel{}).
		Where("id = ?", articleID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		return apperrors.NewInternalError("failed to increment views")
	}

	return nil
}

func (r *NewsRepository) GetCategoryByID(ctx context.Context, id uint) (*news.Category, error) {
	var model models.NewsCategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("id = ? AND is_active = ?", id, true).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("category not found")
		}
		return nil, apperrors.NewInternalError("failed to load category")
	}

	return mappers.NewsCategoryToDomain(&model), nil
}

func (r *NewsRepository) GetCategoryBySlug(ctx context.Context, slug string) (*news.Category, error) {
	var model models.NewsCategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("slug = ? AND is_active = ?", slug, true).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("category not found")
		}
		return nil, apperrors.NewInternalError("failed to load category")
	}

	return mappers.NewsCategoryToDomain(&model), nil
}

func (r *NewsRepository) ListCategories(ctx context.Context) ([]*news.Category, error) {
	return r.listCategories(ctx, false)
}

func (r *NewsRepository) ListMenuCategories(ctx context.Context) ([]*news.Category, error) {
	return r.listCategories(ctx, true)
}

func (r *NewsRepository) listCategories(ctx context.Context, menuOnly bool) ([]*news.Category, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.NewsCategoryModel{}).Where("is_active = ?", true)
	if menuOnly {
		query = query.Where("show_in_menu = ?", true)
	}

	var categoryModels []models.NewsCategoryModel
	if err := query.
		Order("sort_order ASC, name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, apperrors.NewInternalError("failed to list categories")
	}

	categories := make([]*news.Category, 0, len(categoryModels))
	for i := range categoryModels {
		categories = append(categories, mappers.NewsCategoryToDomain(&categoryModels[i]))
	}
	return categories, nil
}

func (r *NewsRepository) FindArticleByID(ctx context.Context, id uint) (*news.Article, error) {
	var model models.ArticleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("article not found")
		}
		return nil, apperrors.NewInternalError("failed to load article")
	}

	return mappers.ArticleToDomain(&model), nil
}

func (r *NewsRepository) SaveArticle(ctx context.Context, article *news.Article) error {
	model := mappers.ArticleToModel(article)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewConflictError("article slug already in use")
		}
		return apperrors.NewInternalError("failed to save article")
	}

	article.ID = model.ID
	return nil
}

func (r *NewsRepository) DeleteArticle(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.ArticleModel{}, id)
	if result.Error != nil {
		return apperrors.NewInternalError("failed to delete article")
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("article not found")
	}
	return nil
}

func (r *NewsRepository) FindCategoryByID(ctx context.Context, id uint) (*news.Category, error) {
	var model models.NewsCategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("category not found")
		}
		return nil, apperrors.NewInternalError("failed to load category")
	}

	return mappers.NewsCategoryToDomain(&model), nil
}

func (r *NewsRepository) SaveCategory(ctx context.Context, category *news.Category) error {
	model := mappers.NewsCategoryToModel(category)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewConflictError("category slug already in use")
		}
		return apperrors.NewInternalError("failed to save category")
	}

	category.ID = model.ID
	return nil
}

// DeleteCategory removes the category and every article in it. Callers
// wrap this in a transaction so the two deletes land together.
func (r *NewsRepository) DeleteCategory(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.NewsCategoryModel{}, id)
	if result.Error != nil {
		return apperrors.NewInternalError("failed to delete category")
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("category not found")
	}

	if err := tx.
		Where("category_id = ?", id).
		Delete(&models.ArticleModel{}).Error; err != nil {
		return apperrors.NewInternalError("failed to delete category articles")
	}
	return nil
}
