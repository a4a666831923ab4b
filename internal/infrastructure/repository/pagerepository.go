package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"zarya/internal/domain/page"
	"zarya/internal/infrastructure/persistence/mappers"
	"zarya/internal/infrastructure/persistence/models"
	"zarya/internal/shared/db"
	apperrors "zarya/internal/shared/errors"
)

type PageRepository struct {
	db *gorm.DB
}

func NewPageRepository(gdb *gorm.DB) *PageRepository {
	return &PageRepository{db: gdb}
}

func (r *PageRepository) GetBySlug(ctx context.Context, slug string) (*page.Page, error) {
	var model models.PageModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("slug = ? AND show_on_site = ?", slug, true).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("page not found")
		}
		return nil, apperrors.NewInternalError("failed to load page")
	}

	return mappers.PageToDomain(&model), nil
}

func (r *PageRepository) ListMenuPages(ctx context.Context) ([]*page.Page, error) {
	var pageModels []models.PageModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("show_in_menu = ? AND show_on_site = ?", true, true).
		Order("sort_order ASC, title ASC").
		Find(&pageModels).Error; err != nil {
		return nil, apperrors.NewInternalError("failed to list menu pages")
	}

	pages := make([]*page.Page, 0, len(pageModels))
	for i := range pageModels {
		pages = append(pages, mappers.PageToDomain(&pageModels[i]))
	}
	return pages, nil
}

func (r *PageRepository) FindByID(ctx context.Context, id uint) (*page.Page, error) {
	var model models.PageModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("page not found")
		}
		return nil, apperrors.NewInternalError("failed to load page")
	}

	return mappers.PageToDomain(&model), nil
}

func (r *PageRepository) ListAll(ctx context.Context) ([]*page.Page, error) {
	var pageModels []models.PageModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Order("sort_order ASC, title ASC").
		Find(&pageModels).Error; err != nil {
		return nil, apperrors.NewInternalError("failed to list pages")
	}

	pages := make([]*page.Page, 0, len(pageModels))
	for i := range pageModels {
		pages = append(pages, mappers.PageToDomain(&pageModels[i]))
	}
	return pages, nil
}

func (r *PageRepository) Save(ctx context.Context, p *page.Page) error {
	model := mappers.PageToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewConflictError("page slug already in use")
		}
		return apperrors.NewInternalError("failed to save page")
	}

	p.ID = model.ID
	return nil
}

func (r *PageRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.PageModel{}, id)
	if result.Error != nil {
		return apperrors.NewInternalError("failed to delete page")
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("page not found")
	}
	return nil
}

// LoadSettings returns the singleton settings row, seeding it on first
// access.
func (r *PageRepository) LoadSettings(ctx context.Context) (*page.SiteSettings, error) {
	var model models.SiteSettingsModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		seeded, mapErr := mappers.SiteSettingsToModel(page.DefaultSettings())
		if mapErr != nil {
			return nil, apperrors.NewInternalError("failed to seed site settings")
		}
		if err := tx.Create(seeded).Error; err != nil {
			return nil, apperrors.NewInternalError("failed to seed site settings")
		}
		model = *seeded
	} else if err != nil {
		return nil, apperrors.NewInternalError("failed to load site settings")
	}

	settings, err := mappers.SiteSettingsToDomain(&model)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to decode site settings")
	}
	return settings, nil
}

func (r *PageRepository) SaveSettings(ctx context.Context, settings *page.SiteSettings) error {
	model, err := mappers.SiteSettingsToModel(settings)
	if err != nil {
		return apperrors.NewInternalError("failed to encode site settings")
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Save(model).Error; err != nil {
		return apperrors.NewInternalError("failed to save site settings")
	}

	return nil
}
