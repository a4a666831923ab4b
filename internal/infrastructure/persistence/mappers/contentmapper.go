package mappers

import (
	"encoding/json"
	"time"

	"zarya/internal/domain/news"
	"zarya/internal/domain/page"
	"zarya/internal/domain/portfolio"
	"zarya/internal/infrastructure/persistence/models"
)

// Content records map field for field, so these are plain functions
// rather than mapper interfaces.

func NewsCategoryToDomain(m *models.NewsCategoryModel) *news.Category {
	return &news.Category{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		ShowInMenu:  m.ShowInMenu,
		SortOrder:   m.SortOrder,
		IsActive:    m.IsActive,
	}
}

func ArticleToDomain(m *models.ArticleModel) *news.Article {
	return &news.Article{
		ID:               m.ID,
		Title:            m.Title,
		Slug:             m.Slug,
		CategoryID:       m.CategoryID,
		ShortDescription: m.ShortDescription,
		Content:          m.Content,
		SEOTitle:         m.SEOTitle,
		SEOKeywords:      m.SEOKeywords,
		SEODescription:   m.SEODescription,
		Views:            m.Views,
		IsActive:         m.IsActive,
		CreatedAt:        time.UnixMilli(m.CreatedAt),
		UpdatedAt:        time.UnixMilli(m.UpdatedAt),
	}
}

func NewsCategoryToModel(c *news.Category) *models.NewsCategoryModel {
	return &models.NewsCategoryModel{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		ShowInMenu:  c.ShowInMenu,
		SortOrder:   c.SortOrder,
		IsActive:    c.IsActive,
	}
}

func ArticleToModel(a *news.Article) *models.ArticleModel {
	m := &models.ArticleModel{
		ID:               a.ID,
		Title:            a.Title,
		Slug:             a.Slug,
		CategoryID:       a.CategoryID,
		ShortDescription: a.ShortDescription,
		Content:          a.Content,
		SEOTitle:         a.SEOTitle,
		SEOKeywords:      a.SEOKeywords,
		SEODescription:   a.SEODescription,
		Views:            a.Views,
		IsActive:         a.IsActive,
	}
	// Leave CreatedAt zero for new rows so gorm stamps it.
	if !a.CreatedAt.IsZero() {
		m.CreatedAt = a.CreatedAt.UnixMilli()
	}
	return m
}

func PortfolioCategoryToDomain(m *models.PortfolioCategoryModel) *portfolio.Category {
	return &portfolio.Category{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		ShowInMenu:  m.ShowInMenu,
		SortOrder:   m.SortOrder,
		IsActive:    m.IsActive,
	}
}

func ProjectToDomain(m *models.ProjectModel) *portfolio.Project {
	return &portfolio.Project{
		ID:               m.ID,
		Title:            m.Title,
		Slug:             m.Slug,
		CategoryID:       m.CategoryID,
		ShortDescription: m.ShortDescription,
		Description:      m.Description,
		ImageURL:         m.ImageURL,
		PriceCents:       m.PriceCents,
		CanOrder:         m.CanOrder,
		SEOTitle:         m.SEOTitle,
		SEOKeywords:      m.SEOKeywords,
		SEODescription:   m.SEODescription,
		Views:            m.Views,
		IsActive:         m.IsActive,
		CreatedAt:        time.UnixMilli(m.CreatedAt),
		UpdatedAt:        time.UnixMilli(m.UpdatedAt),
	}
}

func PortfolioCategoryToModel(c *portfolio.Category) *models.PortfolioCategoryModel {
	return &models.PortfolioCategoryModel{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		ShowInMenu:  c.ShowInMenu,
		SortOrder:   c.SortOrder,
		IsActive:    c.IsActive,
	}
}

func ProjectToModel(p *portfolio.Project) *models.ProjectModel {
	m := &models.ProjectModel{
		ID:               p.ID,
		Title:            p.Title,
		Slug:             p.Slug,
		CategoryID:       p.CategoryID,
		ShortDescription: p.ShortDescription,
		Description:      p.Description,
		ImageURL:         p.ImageURL,
		PriceCents:       p.PriceCents,
		CanOrder:         p.CanOrder,
		SEOTitle:         p.SEOTitle,
		SEOKeywords:      p.SEOKeywords,
		SEODescription:   p.SEODescription,
		Views:            p.Views,
		IsActive:         p.IsActive,
	}
	if !p.CreatedAt.IsZero() {
		m.CreatedAt = p.CreatedAt.UnixMilli()
	}
	return m
}

func PageToDomain(m *models.PageModel) *page.Page {
	return &page.Page{
		ID:             m.ID,
		Title:          m.Title,
		Slug:           m.Slug,
		Content:        m.Content,
		SEOTitle:       m.SEOTitle,
		SEOKeywords:    m.SEOKeywords,
		SEODescription: m.SEODescription,
		ShowInMenu:     m.ShowInMenu,
		SortOrder:      m.SortOrder,
		ShowOnSite:     m.ShowOnSite,
		CreatedAt:      time.UnixMilli(m.CreatedAt),
		UpdatedAt:      time.UnixMilli(m.UpdatedAt),
	}
}

func PageToModel(p *page.Page) *models.PageModel {
	m := &models.PageModel{
		ID:             p.ID,
		Title:          p.Title,
		Slug:           p.Slug,
		Content:        p.Content,
		SEOTitle:       p.SEOTitle,
		SEOKeywords:    p.SEOKeywords,
		SEODescription: p.SEODescription,
		ShowInMenu:     p.ShowInMenu,
		SortOrder:      p.SortOrder,
		ShowOnSite:     p.ShowOnSite,
	}
	if !p.CreatedAt.IsZero() {
		m.CreatedAt = p.CreatedAt.UnixMilli()
	}
	return m
}

func SiteSettingsToDomain(m *models.SiteSettingsModel) (*page.SiteSettings, error) {
	links := map[string]string{}
	if len(m.SocialLinks) > 0 {
		if err := json.Unmarshal(m.SocialLinks, &links); err != nil {
			return nil, err
		}
	}

	return &page.SiteSettings{
		ID:            m.ID,
		SiteName:      m.SiteName,
		Tagline:       m.Tagline,
		Phone:         m.Phone,
		Email:         m.Email,
		Address:       m.Address,
		SocialLinks:   links,
		SiteClosed:    m.SiteClosed,
		ClosedMessage: m.ClosedMessage,
		UpdatedAt:     time.UnixMilli(m.UpdatedAt),
	}, nil
}

func SiteSettingsToModel(s *page.SiteSettings) (*models.SiteSettingsModel, error) {
	links, err := json.Marshal(s.SocialLinks)
	if err != nil {
		return nil, err
	}

	return &models.SiteSettingsModel{
		ID:            s.ID,
		SiteName:      s.SiteName,
		Tagline:       s.Tagline,
		Phone:         s.Phone,
		Email:         s.Email,
		Address:       s.Address,
		SocialLinks:   links,
		SiteClosed:    s.SiteClosed,
		ClosedMessage: s.ClosedMessage,
	}, nil
}
