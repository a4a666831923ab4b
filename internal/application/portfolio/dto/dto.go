package dto

import (
	"time"

	"zarya/internal/domain/portfolio"
)

type CategoryDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type ProjectListItemDTO struct {
	ID               uint      `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	ShortDescription string    `json:"short_description"`
	ImageURL         string    `json:"image_url"`
	PriceCents       int64     `json:"price_cents"`
	CanOrder         bool      `json:"can_order"`
	Views            uint      `json:"views"`
	CreatedAt        time.Time `json:"created_at"`
}

type ProjectDTO struct {
	ID               uint                 `json:"id"`
	Title            string               `json:"title"`
	Slug             string               `json:"slug"`
	Category         CategoryDTO          `json:"category"`
	ShortDescription string               `json:"short_description"`
	DescriptionHTML  string               `json:"description_html"`
	ImageURL         string               `json:"image_url"`
	PriceCents       int64                `json:"price_cents"`
	CanOrder         bool                 `json:"can_order"`
	SEOTitle         string               `json:"seo_title"`
	SEOKeywords      string               `json:"seo_keywords"`
	SEODescription   string               `json:"seo_description"`
	Views            uint                 `json:"views"`
	CreatedAt        time.Time            `json:"created_at"`
	Similar          []ProjectListItemDTO `json:"similar"`
}

func ToCategoryDTO(c *portfolio.Category) CategoryDTO {
	return CategoryDTO{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
	}
}

func ToProjectListItemDTO(p *portfolio.Project) ProjectListItemDTO {
	return ProjectListItemDTO{
		ID:               p.ID,
		Title:            p.Title,
		Slug:             p.Slug,
		ShortDescription: p.ShortDescription,
		ImageURL:         p.ImageURL,
		PriceCents:       p.PriceCents,
		CanOrder:         p.CanOrder,
		Views:            p.Views,
		CreatedAt:        p.CreatedAt,
	}
}

func ToProjectListItemDTOs(projects []*portfolio.Project) []ProjectListItemDTO {
	items := make([]ProjectListItemDTO, 0, len(projects))
	for _, p := range projects {
		items = append(items, ToProjectListItemDTO(p))
	}
	return items
}
