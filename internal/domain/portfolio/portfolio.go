// Package portfolio contains the portfolio category and project content
// records shown on the public site.
package portfolio

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

func (c *Category) EnsureSlug() {
	if c.Slug == "" {
		c.Slug = slug.Make(c.Name)
	}
}

type Project struct {
	ID               uint
	Title            string
	Slug             string
	CategoryID       uint
	ShortDescription string
	Description      string
	ImageURL         string
	// PriceCents holds the quoted price in minor units; zero means the
	// price is negotiated per order.
	PriceCents     int64
	CanOrder       bool
	SEOTitle       string
	SEOKeywords    string
	SEODescription string
	Views          uint
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (p *Project) Validate() error {
	if len(p.Title) == 0 {
		return fmt.Errorf("project title is required")
	}
	if len(p.Title) > 200 {
		return fmt.Errorf("project title exceeds maximum length of 200 characters")
	}
	if p.CategoryID == 0 {
		return fmt.Errorf("project category is required")
	}
	if p.PriceCents < 0 {
		return fmt.Errorf("project price cannot be negative")
	}
	return nil
}

func (p *Project) EnsureSlug() {
	if p.Slug == "" {
		p.Slug = slug.Make(p.Title)
	}
}
