package usecases

import (
	"context"

	"zarya/internal/application/user/dto"
	"zarya/internal/domain/user"
	"zarya/internal/shared/logger"
)

type GetProfileQuery struct {
	UserID uint
}

type GetProfileUseCase struct {
	userRepo user.Repository
	// providers maps a stat name to its counter; keys become the keys of
	// the profile stats map.
	providers map[string]StatsProvider
	logger    logger.Interface
}

func NewGetProfileUseCase(
	userRepo user.Repository,
	providers map[string]StatsProvider,
	logger logger.Interface,
) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo:  userRepo,
		providers: providers,
		logger:    logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*dto.ProfileDTO, error) {
	uc.logger.Infow("executing get profile use case", "user_id", query.UserID)

	u, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}

	profile, err := uc.userRepo.GetProfile(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load profile", "user_id", query.UserID, "error", err)
		return nil, err
	}

	// A failing provider contributes zero rather than failing the page.
	stats := make(map[string]int64, len(uc.providers))
	for name, provider := range uc.providers {
		count, err := provider.CountForUser(ctx, query.UserID)
		if err != nil {
			uc.logger.Warnw("stats provider failed", "provider", name, "user_id", query.UserID, "error", err)
			count = 0
		}
		stats[name] = count
	}

	return &dto.ProfileDTO{
		UserID:    u.ID(),
		Username:  u.Username(),
		Email:     u.Email(),
		Phone:     profile.Phone(),
		Bio:       profile.Bio(),
		AvatarURL: profile.AvatarURL(),
		JoinedAt:  u.CreatedAt(),
		Stats:     stats,
	}, nil
}
