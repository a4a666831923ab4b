package dto

import (
	"time"

	"zarya/internal/domain/news"
)

// Admin DTOs expose the raw stored content and the flags the public
// DTOs hide.

type CategoryAdminDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ShowInMenu  bool   `json:"show_in_menu"`
	SortOrder   int    `json:"sort_order"`
	IsActive    bool   `json:"is_active"`
}

type ArticleAdminDTO struct {
	ID               uint      `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	CategoryID       uint      `json:"category_id"`
	ShortDescription string    `json:"short_description"`
	Content          string    `json:"content"`
	SEOTitle         string    `json:"seo_title"`
	SEOKeywords      string    `json:"seo_keywords"`
	SEODescription   string    `json:"seo_description"`
	Views            uint      `json:"views"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func ToCategoryAdminDTO(c *news.Category) *CategoryAdminDTO {
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

func ToArticleAdminDTO(a *news.Article) *ArticleAdminDTO {
	return &ArticleAdminDTO{
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
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}
