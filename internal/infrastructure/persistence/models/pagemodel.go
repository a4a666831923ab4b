package models

import "gorm.io/datatypes"

type PageModel struct {
	ID             uint   `gorm:"primaryKey"`
	Title          string `gorm:"size:200;not null"`
	Slug           string `gorm:"uniqueIndex;size:220;not null"`
	Content        string `gorm:"type:text"`
	SEOTitle       string `gorm:"size:200"`
	SEOKeywords    string `gorm:"size:500"`
	SEODescription string `gorm:"size:500"`
	ShowInMenu     bool   `gorm:"not null;default:false;index"`
	SortOrder      int    `gorm:"not null;default:0"`
	ShowOnSite     bool   `gorm:"not null;default:true;index"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (PageModel) TableName() string {
	return "pages"
}

// SiteSettingsModel is a singleton table; the application keeps exactly
// one row in it.
type SiteSettingsModel struct {
	ID            uint           `gorm:"primaryKey"`
	SiteName      string         `gorm:"size:200;not null"`
	Tagline       string         `gorm:"size:500"`
	Phone         string         `gorm:"size:30"`
	Email         string         `gorm:"size:255"`
	Address       string         `gorm:"size:500"`
	SocialLinks   datatypes.JSON `gorm:"type:json"`
	SiteClosed    bool           `gorm:"not null;default:false"`
	ClosedMessage string         `gorm:"type:text"`
	UpdatedAt     int64          `gorm:"autoUpdateTime:milli;not null"`
}

func (SiteSettingsModel) TableName() string {
	return "site_settings"
}
