package usecases

import (
	"context"

	"zarya/internal/application/user/dto"
	"zarya/internal/domain/user"
	"zarya/internal/shared/db"
	apperrors "zarya/internal/shared/errors"
	"zarya/internal/shared/logger"
)

type RegisterCommand struct {
	Username string
	Email    string
	Password string
}

type RegisterResult struct {
	User *dto.UserDTO
}

type RegisterUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	txMgr    *db.TransactionManager
	logger   logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		txMgr:    txMgr,
		logger:   logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	uc.logger.Infow("executing register use case", "username", cmd.Username)

	if err := user.ValidatePasswordLength(cmd.Password); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	taken, err := uc.userRepo.ExistsByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to check username", "username", cmd.Username, "error", err)
		return nil, err
	}
	if taken {
		return nil, apperrors.NewConflictError("username is already taken")
	}

	used, err := uc.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to check email", "error", err)
		return nil, err
	}
	if used {
		return nil, apperrors.NewConflictError("email is already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, apperrors.NewInternalError("failed to process registration")
	}

	newUser, err := user.NewUser(cmd.Username, cmd.Email, hash)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	// The profile row is created together with the account so every user
	// always has one.
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.userRepo.Create(txCtx, newUser); err != nil {
			uc.logger.Errorw("failed to create user", "username", cmd.Username, "error", err)
			return err
		}

		profile, err := user.NewProfile(newUser.ID())
		if err != nil {
			return err
		}
		if err := uc.userRepo.CreateProfile(txCtx, profile); err != nil {
			uc.logger.Errorw("failed to create profile", "user_id", newUser.ID(), "error", err)
			return err
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("user registered successfully", "user_id", newUser.ID(), "username", cmd.Username)
	return &RegisterResult{User: dto.ToUserDTO(newUser)}, nil
}
