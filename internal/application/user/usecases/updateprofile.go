package usecases

import (
	"context"

	"zarya/internal/application/user/dto"
	"zarya/internal/domain/user"
	apperrors "zarya/internal/shared/errors"
	"zarya/internal/shared/logger"
)

type UpdateProfileCommand struct {
	UserID    uint
	Email     *string
	Phone     *string
	Bio       *string
	AvatarURL *string
}

type UpdateProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateProfileUseCase(userRepo user.Repository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.ProfileDTO, error) {
	uc.logger.Infow("executing update profile use case", "user_id", cmd.UserID)

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	profile, err := uc.userRepo.GetProfile(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if cmd.Email != nil && *cmd.Email != u.Email() {
		used, err := uc.userRepo.ExistsByEmail(ctx, *cmd.Email)
		if err != nil {
			return nil, err
		}
		if used {
			return nil, apperrors.NewConflictError("email is already registered")
		}
		if err := u.UpdateEmail(*cmd.Email); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		if err := uc.userRepo.Update(ctx, u); err != nil {
			uc.logger.Errorw("failed to update user", "user_id", cmd.UserID, "error", err)
			return nil, err
		}
	}

	phone := profile.Phone()
	if cmd.Phone != nil {
		phone = *cmd.Phone
	}
	bio := profile.Bio()
	if cmd.Bio != nil {
		bio = *cmd.Bio
	}
	avatarURL := profile.AvatarURL()
	if cmd.AvatarURL != nil {
		avatarURL = *cmd.AvatarURL
	}
	profile.Update(phone, bio, avatarURL)

	if err := uc.userRepo.UpdateProfile(ctx, profile); err != nil {
		uc.logger.Errorw("failed to update profile", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("profile updated successfully", "user_id", cmd.UserID)
	return &dto.ProfileDTO{
		UserID:    u.ID(),
		Username:  u.Username(),
		Email:     u.Email(),
		Phone:     profile.Phone(),
		Bio:       profile.Bio(),
		AvatarURL: profile.AvatarURL(),
		JoinedAt:  u.CreatedAt(),
	}, nil
}
