package news

import (
	"strings"
	"testing"
)

func TestCategory_EnsureSlug(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		wantSlug string
	}{
		{"derived from name", Category{Name: "Company News"}, "company-news"},
		{"existing slug kept", Category{Name: "Company News", Slug: "custom"}, "custom"},
		{"cyrillic transliterated", Category{Name: "Новости компании"}, "novosti-kompanii"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.category.EnsureSlug()
			if tt.category.Slug != tt.wantSlug {
				t.Errorf("Slug = %q, want %q", tt.category.Slug, tt.wantSlug)
			}
		})
	}
}

func TestArticle_Validate(t *testing.T) {
	tests := []struct {
		name    string
		article Article
		wantErr bool
	}{
		{"valid article", Article{Title: "Launch day", CategoryID: 1}, false},
		{"missing title", Article{CategoryID: 1}, true},
		{"title too long", Article{Title: strings.Repeat("a", 201), CategoryID: 1}, true},
		{"missing category", Article{Title: "Launch day"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.article.Validate()
			if tt.wantErr && err == nil {
				t.Error("Validate() error = nil, want error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
		})
	}
}

func TestArticle_EnsureSlug(t *testing.T) {
	a := Article{Title: "Запуск нового сайта", CategoryID: 1}
	a.EnsureSlug()
	if a.Slug != "zapusk-novogo-saita" {
		t.Errorf("Slug = %q, want %q", a.Slug, "zapusk-novogo-saita")
	}
}
