package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zarya/internal/domain/portfolio"
	apperrors "zarya/internal/shared/errors"
)

func TestSaveProject_CreateAssignsIDAndSlug(t *testing.T) {
	repo := &mockPortfolioRepository{
		FindCategoryByIDFunc: func(ctx context.Context, id uint) (*portfolio.Category, error) {
			return &portfolio.Category{ID: id, Name: "Web", Slug: "web", IsActive: true}, nil
		},
		SaveProjectFunc: func(ctx context.Context, project *portfolio.Project) error {
			project.ID = 11
			return nil
		},
	}
	uc := NewSaveProjectUseCase(repo, &stubSanitizer{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), SaveProjectCommand{
		Title:      "Corporate Site",
		CategoryID: 2,
		PriceCents: 250000,
		CanOrder:   true,
		IsActive:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(11), result.ID)
	assert.Equal(t, "corporate-site", result.Slug)
	assert.Equal(t, int64(250000), result.PriceCents)
}

func TestSaveProject_SanitizesDescriptionBeforeSave(t *testing.T) {
	var saved *portfolio.Project
	repo := &mockPortfolioRepository{
		FindCategoryByIDFunc: func(ctx context.Context, id uint) (*portfolio.Category, error) {
			return &portfolio.Category{ID: id, Name: "Web", Slug: "web", IsActive: true}, nil
		},
		SaveProjectFunc: func(ctx context.Context, project *portfolio.Project) error {
			saved = project
			return nil
		},
	}
	sanitizer := &stubSanitizer{output: "<p>case study</p>"}
	uc := NewSaveProjectUseCase(repo, sanitizer, &mockLogger{})

	_, err := uc.Execute(context.Background(), SaveProjectCommand{
		Title:       "Corporate Site",
		CategoryID:  2,
		Description: `<p>case study</p><script>alert(1)</script>`,
		IsActive:    true,
	})
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Equal(t, `<p>case study</p><script>alert(1)</script>`, sanitizer.gotInput)
	assert.Equal(t, "<p>case study</p>", saved.Description)
}

func TestSaveProject_NegativePrice(t *testing.T) {
	repo := &mockPortfolioRepository{
		FindCategoryByIDFunc: func(ctx context.Context, id uint) (*portfolio.Category, error) {
			return &portfolio.Category{ID: id, Name: "Web", Slug: "web", IsActive: true}, nil
		},
	}
	uc := NewSaveProjectUseCase(repo, &stubSanitizer{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), SaveProjectCommand{
		Title:      "Corporate Site",
		CategoryID: 2,
		PriceCents: -1,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestSaveProject_UnknownCategory(t *testing.T) {
	repo := &mockPortfolioRepository{
		FindCategoryByIDFunc: func(ctx context.Context, id uint) (*portfolio.Category, error) {
			return nil, apperrors.NewNotFoundError("category not found")
		},
	}
	uc := NewSaveProjectUseCase(repo, &stubSanitizer{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), SaveProjectCommand{
		Title:      "Corporate Site",
		CategoryID: 99,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}
