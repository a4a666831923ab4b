package migration

import (
	"zarya/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.ProfileModel{},
		&models.TicketModel{},
		&models.TicketResponseModel{},
		&models.NewsCategoryModel{},
		&models.ArticleModel{},
		&models.PortfolioCategoryModel{},
		&models.ProjectModel{},
		&models.ReviewModel{},
		&models.PageModel{},
		&models.SiteSettingsModel{},
	}
}
