package models

type PortfolioCategoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Slug        string `gorm:"uniqueIndex;size:120;not null"`
	Description string `gorm:"type:text"`
	ShowInMenu  bool   `gorm:"not null;default:false"`
	SortOrder   int    `gorm:"not null;default:0"`
	IsActive    bool   `gorm:"not null;default:true;index"`
}

func (PortfolioCategoryModel) TableName() string {
	return "portfolio_categories"
}

type ProjectModel struct {
	ID               uint   `gorm:"primaryKey"`
	Title            string `gorm:"size:200;not null"`
	Slug             string `gorm:"uniqueIndex;size:220;not null"`
	CategoryID       uint   `gorm:"not null;index"`
	ShortDescription string `gorm:"type:text"`
	Description      string `gorm:"type:text"`
	ImageURL         string `gorm:"size:500"`
	PriceCents       int64  `gorm:"not null;default:0"`
	CanOrder         bool   `gorm:"not null;default:false"`
	SEOTitle         string `gorm:"size:200"`
	SEOKeywords      string `gorm:"size:500"`
	SEODescription   string `gorm:"size:500"`
	Views            uint   `gorm:"not null;default:0"`
	IsActive         bool   `gorm:"not null;default:true;index"`
	CreatedAt        int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt        int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ProjectModel) TableName() string {
	return "portfolio_projects"
}
