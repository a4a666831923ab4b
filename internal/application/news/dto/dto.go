package dto

import (
	"time"

	"zarya/internal/domain/news"
)

type CategoryDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type ArticleListItemDTO struct {
	ID               uint      `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	ShortDescription string    `json:"short_description"`
	Views            uint      `json:"views"`
	CreatedAt        time.Time `json:"created_at"`
}

type ArticleDTO struct {
	ID               uint                 `json:"id"`
	Title            string               `json:"title"`
	Slug             string               `json:"slug"`
	Category         CategoryDTO          `json:"category"`
	ShortDescription string               `json:"short_description"`
	ContentHTML      string               `json:"content_html"`
	SEOTitle         string               `json:"seo_title"`
	SEOKeywords      string               `json:"seo_keywords"`
	SEODescription   string               `json:"seo_description"`
	Views            uint                 `json:"views"`
	CreatedAt        time.Time            `json:"created_at"`
	Similar          []ArticleListItemDTO `json:"similar"`
	Latest           []ArticleListItemDTO `json:"latest"`
}

func ToCategoryDTO(c *news.Category) CategoryDTO {
	return CategoryDTO{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
	}
}

func ToArticleListItemDTO(a *news.Article) ArticleListItemDTO {
	return ArticleListItemDTO{
		ID:               a.ID,
		Title:            a.Title,
		Slug:             a.Slug,
		ShortDescription: a.ShortDescription,
		Views:            a.Views,
		CreatedAt:        a.CreatedAt,
	}
}

func ToArticleListItemDTOs(articles []*news.Article) []ArticleListItemDTO {
	items := make([]ArticleListItemDTO, 0, len(articles))
	for _, a := range articles {
		items = append(items, ToArticleListItemDTO(a))
	}
	return items
}
