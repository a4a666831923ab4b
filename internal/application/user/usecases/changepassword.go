package usecases

import (
	"context"

	"zarya/internal/domain/user"
	apperrors "zarya/internal/shared/errors"
	"zarya/internal/shared/logger"
)

type ChangePasswordCommand struct {
	UserID      uint
	OldPassword string
	NewPassword string
}

type ChangePasswordUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewChangePasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
	uc.logger.Infow("executing change password use case", "user_id", cmd.UserID)

	if err := user.ValidatePasswordLength(cmd.NewPassword); err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return err
	}

	if err := uc.hasher.Verify(u.PasswordHash(), cmd.OldPassword); err != nil {
		uc.logger.Warnw("password change rejected", "user_id", cmd.UserID)
		return apperrors.NewUnauthorizedError("current password is incorrect")
	}

	hash, err := uc.hasher.Hash(cmd.NewPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "user_id", cmd.UserID, "error", err)
		return apperrors.NewInternalError("failed to change password")
	}

	if err := u.ChangePasswordHash(hash); err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to persist password change", "user_id", cmd.UserID, "error", err)
		return err
	}

	uc.logger.Infow("password changed successfully", "user_id", cmd.UserID)
	return nil
}
