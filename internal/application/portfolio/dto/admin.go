package dto

import (
	"time"

	"zarya/internal/domain/portfolio"
)

type CategoryAdminDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ShowInMenu  bool   `json:"show_in_menu"`
	SortOrder   int    `json:"sort_order"`
	IsActive    bool   `json:"is_active"`
}

type ProjectAdminDTO struct {
	ID               uint      `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	CategoryID       uint      `json:"category_id"`
	ShortDescription string    `json:"short_description"`
	Description      string    `json:"description"`
	ImageURL         string    `json:"image_url"`
	PriceCents       int64     `json:"price_cents"`
	CanOrder         bool      `json:"can_order"`
	SEOTitle         string    `json:"seo_title"`
	SEOKeywords      string    `json:"seo_keywords"`
	SEODescription   string    `json:"seo_description"`
	Views            uint      `json:"views"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func ToCategoryAdminDTO(c *portfolio.Category) *CategoryAdminDTO {
	return &CategoryAdminDTO{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		ShowInMenu:  c.ShowInMenu,
		SortOrder:   c.SortOrder,
		IsActive:    c.IsActive,
	}
}

func ToProjectAdminDTO(p *portfolio.Project) *ProjectAdminDTO {
	return &ProjectAdminDTO{
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
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
