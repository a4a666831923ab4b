// Package news contains the news category and article content records.
// These are query-mostly content rows with no lifecycle beyond slug
// generation and an active flag, so they are modeled as plain records
// validated at the edges.
package news

import (
	"fmt"
	"time"

	"github.com/gosimple/slug"
)

type Category struct {
	ID          uint
	Name        string
	Slug        string
	Description string
	ShowInMenu  bool
	SortOrder   int
	IsActive    bool
}

func (c *Category) Validate() error {
	if len(c.Name) == 0 {
		return fmt.Errorf("category name is required")
	}
	return nil
}

// EnsureSlug derives the slug from the name when absent, transliterating
// non-Latin titles.
func (c *Category) EnsureSlug() {
	if c.Slug == "" {
		c.Slug = slug.Make(c.Name)
	}
}

type Article struct {
	ID               uint
	Title            string
	Slug             string
	CategoryID       uint
	ShortDescription string
	Content          string
	SEOTitle         string
	SEOKeywords      string
	SEODescription   string
	Views            uint
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (a *Article) Validate() error {
	if len(a.Title) == 0 {
		return fmt.Errorf("article title is required")
	}
	if len(a.Title) > 200 {
		return fmt.Errorf("article title exceeds maximum length of 200 characters")
	}
	if a.CategoryID == 0 {
		return fmt.Errorf("article category is required")
	}
	return nil
}

func (a *Article) EnsureSlug() {
	if a.Slug == "" {
		a.Slug = slug.Make(a.Title)
	}
}
