package dto

import (
	"time"

	"zarya/internal/domain/page"
)

type PageDTO struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Slug           string    `json:"slug"`
	ContentHTML    string    `json:"content_html"`
	SEOTitle       string    `json:"seo_title"`
	SEOKeywords    string    `json:"seo_keywords"`
	SEODescription string    `json:"seo_description"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type MenuPageDTO struct {
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	SortOrder int    `json:"sort_order"`
}

type SiteSettingsDTO struct {
	SiteName      string            `json:"site_name"`
	Tagline       string            `json:"tagline"`
	Phone         string            `json:"phone"`
	Email         string            `json:"email"`
	Address       string            `json:"address"`
	SocialLinks   map[string]string `json:"social_links"`
	SiteClosed    bool              `json:"site_closed"`
	ClosedMessage string            `json:"closed_message"`
}

func ToMenuPageDTOs(pages []*page.Page) []MenuPageDTO {
	items := make([]MenuPageDTO, 0, len(pages))
	for _, p := range pages {
		items = append(items, MenuPageDTO{
			Title:     p.Title,
			Slug:      p.Slug,
			SortOrder: p.SortOrder,
		})
	}
	return items
}

func ToSiteSettingsDTO(s *page.SiteSettings) *SiteSettingsDTO {
	if s == nil {
		return nil
	}
	return &SiteSettingsDTO{
		SiteName:      s.SiteName,
		Tagline:       s.Tagline,
		Phone:         s.Phone,
		Email:         s.Email,
		Address:       s.Address,
		SocialLinks:   s.SocialLinks,
		SiteClosed:    s.SiteClosed,
		ClosedMessage: s.ClosedMessage,
	}
}
