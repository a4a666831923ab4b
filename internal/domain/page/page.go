// Package page holds static site pages and the singleton site settings
// record that drives the public site chrome.
package page

import (
	"fmt"
	"time"

	"github.com/gosimple/slug"
)

type Page struct {
	ID             uint
	Title          string
	Slug           string
	Content        string
	SEOTitle       string
	SEOKeywords    string
	SEODescription string
	ShowInMenu     bool
	SortOrder      int
	ShowOnSite     bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (p *Page) Validate() error {
	if len(p.Title) == 0 {
		return fmt.Errorf("page title is required")
	}
	if len(p.Title) > 200 {
		return fmt.Errorf("page title exceeds maximum length of 200 characters")
	}
	return nil
}

func (p *Page) EnsureSlug() {
	if p.Slug == "" {
		p.Slug = slug.Make(p.Title)
	}
}

// SiteSettings is a singleton row; LoadSettings creates it with defaults
// on first access.
type SiteSettings struct {
	ID          uint
	SiteName    string
	Tagline     string
	Phone       string
	Email       string
	Address     string
	SocialLinks map[string]string
	// SiteClosed gates every public route behind a maintenance response.
	SiteClosed    bool
	ClosedMessage string
	UpdatedAt     time.Time
}

// DefaultSettings returns the settings used to seed the singleton row.
func DefaultSettings() *SiteSettings {
	return &SiteSettings{
		SiteName:    "Zarya",
		SocialLinks: map[string]string{},
	}
}
