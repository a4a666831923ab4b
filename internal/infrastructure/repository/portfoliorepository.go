package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"zarya/internal/domain/portfolio"
	"zarya/internal/infrastructure/persistence/mappers"
	"zarya/internal/infrastructure/persistence/models"
	"zarya/internal/shared/db"
	apperrors "zarya/internal/shared/errors"
)

type PortfolioRepository struct {
	db *gorm.DB
}

func NewPortfolioRepository(gdb *gorm.DB) *PortfolioRepository {
	return &PortfolioRepository{db: gdb}
}

func (r *PortfolioRepository) ListProjects(ctx context.Context, page, pageSize int) ([]*portfolio.Project, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ProjectModel{}).Where("is_active = ?", true)
	return r.listProjects(query, page, pageSize)
}

func (r *PortfolioRepository) ListProjectsByCategory(ctx context.Context, categoryID uint, page, pageSize int) ([]*portfolio.Project, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ProjectModel{}).
		Where("is_active = ? AND category_id = ?", true, categoryID)
	return r.listProjects(query, page, pageSize)
}

func (r *PortfolioRepository) listProjects(query *gorm.DB, page, pageSize int) ([]*portfolio.Project, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewInternalError("failed to count projects")
	}

	var projectModels []models.ProjectModel
	offset := (page - 1) * pageSize
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&projectModels).Error; err != nil {
		return nil, 0, apperrors.NewInternalError("failed to list projects")
	}

	projects := make([]*portfolio.Project, 0, len(projectModels))
	for i := range projectModels {
		projects = append(projects, mappers.ProjectToDomain(&projectModels[i]))
	}

	return projects, total, nil
}

func (r *PortfolioRepository) GetProjectBySlug(ctx context.Context, slug string) (*portfolio.Project, error) {
	var model models.ProjectModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("slug = ? AND is_active = ?", slug, true).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("project not found")
		}
		return nil, apperrors.NewInternalError("failed to load project")
	}

	return mappers.ProjectToDomain(&model), nil
}

func (r *PortfolioRepository) ListSimilar(ctx context.Context, categoryID, excludeID uint, limit int) ([]*portfolio.Project, error) {
	var projectModels []models.ProjectModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("is_active = ? AND category_id = ? AND id <> ?", true, categoryID, excludeID).
		Order("created_at DESC").
		Limit(limit).
		Find(&projectModels).Error; err != nil {
		return nil, apperrors.NewInternalError("failed to list similar projects")
	}

	projects := make([]*portfolio.Project, 0, len(projectModels))
	for i := range projectModels {
		projects = append(projects, mappers.ProjectToDomain(&projectModels[i]))
	}
	return projects, nil
}

func (r *PortfolioRepository) IncrementViews(ctx context.Context, projectID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.ProjectModel{}).
		Where("id = ?", projectID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		return apperrors.NewInternalError("failed to increment views")
	}

	return nil
}

func (r *PortfolioRepository) GetCategoryByID(ctx context.Context, id uint) (*portfolio.Category, error) {
	var model models.PortfolioCategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("id = ? AND is_active = ?", id, true).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("category not found")
		}
		return nil, apperrors.NewInternalError("failed to load category")
	}

	return mappers.PortfolioCategoryToDomain(&model), nil
}

func (r *PortfolioRepository) GetCategoryBySlug(ctx context.Context, slug string) (*portfolio.Category, error) {
	var model models.PortfolioCategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("slug = ? AND is_active = ?", slug, true).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("category not found")
		}
		return nil, apperrors.NewInternalError("failed to load category")
	}

	return mappers.PortfolioCategoryToDomain(&model), nil
}

func (r *PortfolioRepository) ListCategories(ctx context.Context) ([]*portfolio.Category, error) {
	return r.listCategories(ctx, false)
}

func (r *PortfolioRepository) ListMenuCategories(ctx context.Context) ([]*portfolio.Category, error) {
	return r.listCategories(ctx, true)
}

func (r *PortfolioRepository) listCategories(ctx context.Context, menuOnly bool) ([]*portfolio.Category, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.PortfolioCategoryModel{}).Where("is_active = ?", true)
	if menuOnly {
		query = query.Where("show_in_menu = ?", true)
	}

	var categoryModels []models.PortfolioCategoryModel
	if err := query.
		Order("sort_order ASC, name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, apperrors.NewInternalError("failed to list categories")
	}

	categories := make([]*portfolio.Category, 0, len(categoryModels))
	for i := range categoryModels {
		categories = append(categories, mappers.PortfolioCategoryToDomain(&categoryModels[i]))
	}
	return categories, nil
}

func (r *PortfolioRepository) FindProjectByID(ctx context.Context, id uint) (*portfolio.Project, error) {
	var model models.ProjectModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("project not found")
		}
		return nil, apperrors.NewInternalError("failed to load project")
	}

	return mappers.ProjectToDomain(&model), nil
}

func (r *PortfolioRepository) SaveProject(ctx context.Context, project *portfolio.Project) error {
	model := mappers.ProjectToModel(project)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewConflictError("project slug already in use")
		}
		return apperrors.NewInternalError("failed to save project")
	}

	project.ID = model.ID
	return nil
}

func (r *PortfolioRepository) DeleteProject(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.ProjectModel{}, id)
	if result.Error != nil {
		return apperrors.NewInternalError("failed to delete project")
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("project not found")
	}
	return nil
}

func (r *PortfolioRepository) FindCategoryByID(ctx context.Context, id uint) (*portfolio.Category, error) {
	var model models.PortfolioCategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("category not found")
		}
		return nil, apperrors.NewInternalError("failed to load category")
	}

	return mappers.PortfolioCategoryToDomain(&model), nil
}

func (r *PortfolioRepository) SaveCategory(ctx context.Context, category *portfolio.Category) error {
	model := mappers.PortfolioCategoryToModel(category)
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

// DeleteCategory removes the category and every project in it. Callers
// wrap this in a transaction so the two deletes land together.
func (r *PortfolioRepository) DeleteCategory(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.PortfolioCategoryModel{}, id)
	if result.Error != nil {
		return apperrors.NewInternalError("failed to delete category")
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("category not found")
	}

	if err := tx.
		Where("category_id = ?", id).
		Delete(&models.ProjectModel{}).Error; err != nil {
		return apperrors.NewInternalError("failed to delete category projects")
	}
	return nil
}
