package usecases

import (
	"context"

	"zarya/internal/application/page/dto"
	"zarya/internal/domain/page"
	apperrors "zarya/internal/shared/errors"
	"zarya/internal/shared/logger"
)

// UpdateSettingsCommand replaces the site settings singleton, including
// the maintenance switch that closes the public site.
type UpdateSettingsCommand struct {
	SiteName      string
	Tagline       string
	Phone         string
	Email         string
	Address       string
	SocialLinks   map[string]string
	SiteClosed    bool
	ClosedMessage string
}

type UpdateSettingsUseCase struct {
	pageRepo page.Repository
	logger   logger.Interface
}

func NewUpdateSettingsUseCase(pageRepo page.Repository, logger logger.Interface) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		pageRepo: pageRepo,
		logger:   logger,
	}
}

func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, cmd UpdateSettingsCommand) (*dto.SiteSettingsDTO, error) {
	if cmd.SiteName == "" {
		return nil, apperrors.NewValidationError("site name is required")
	}

	// Load first so the singleton keeps its row ID.
	current, err := uc.pageRepo.LoadSettings(ctx)
	if err != nil {
		return nil, err
	}

	links := cmd.SocialLinks
	if links == nil {
		links = map[string]string{}
	}

	settings := &page.SiteSettings{
		ID:            current.ID,
		SiteName:      cmd.SiteName,
		Tagline:       cmd.Tagline,
		Phone:         cmd.Phone,
		Email:         cmd.Email,
		Address:       cmd.Address,
		SocialLinks:   links,
		SiteClosed:    cmd.SiteClosed,
		ClosedMessage: cmd.ClosedMessage,
	}

	if err := uc.pageRepo.SaveSettings(ctx, settings); err != nil {
		uc.logger.Errorw("failed to update site settings", "error", err)
		return nil, err
	}

	if settings.SiteClosed != current.SiteClosed {
		uc.logger.Infow("site maintenance switch changed", "closed", settings.SiteClosed)
	}

	return dto.ToSiteSettingsDTO(settings), nil
}
