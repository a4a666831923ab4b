package dto

import (
	"time"

	"zarya/internal/domain/page"
)

type PageAdminDTO struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Slug           string    `json:"slug"`
	Content        string    `json:"content"`
	SEOTitle       string    `json:"seo_title"`
	SEOKeywords    string    `json:"seo_keywords"`
	SEODescription string    `json:"seo_description"`
	ShowInMenu     bool      `json:"show_in_menu"`
	SortOrder      int       `json:"sort_order"`
	ShowOnSite     bool      `json:"show_on_site"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ToPageAdminDTO(p *page.Page) *PageAdminDTO {
	return &PageAdminDTO{
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
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func ToPageAdminDTOs(pages []*page.Page) []PageAdminDTO {
	items := make([]PageAdminDTO, 0, len(pages))
	for _, p := range pages {
		items = append(items, *ToPageAdminDTO(p))
	}
	return items
}
