package usecases

import (
	"context"

	"zarya/internal/application/user/dto"
	"zarya/internal/domain/user"
	apperrors "zarya/internal/shared/errors"
	"zarya/internal/shared/logger"
)

type LoginCommand struct {
	Username string
	Password string
}

type LoginResult struct {
	User      *dto.UserDTO
	Token     string
	ExpiresIn int64
}

type LoginUseCase struct {
	userRepo   user.Repository
	hasher     user.PasswordHasher
	jwtService JWTService
	logger     logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	jwtService JWTService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	uc.logger.Infow("executing login use case", "username", cmd.Username)

	u, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		// A missing account and a wrong password look the same to the caller.
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewUnauthorizedError("invalid username or password")
		}
		uc.logger.Errorw("failed to load user", "username", cmd.Username, "error", err)
		return nil, err
	}

	if err := uc.hasher.Verify(u.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("login failed", "username", cmd.Username)
		return nil, apperrors.NewUnauthorizedError("invalid username or password")
	}

	token, expiresIn, err := uc.jwtService.Generate(u.ID(), u.Username(), u.IsStaff())
	if err != nil {
		uc.logger.Errorw("failed to generate token", "user_id", u.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to create session")
	}

	uc.logger.Infow("login succeeded", "user_id", u.ID(), "username", cmd.Username)
	return &LoginResult{
		User:      dto.ToUserDTO(u),
		Token:     token,
		ExpiresIn: expiresIn,
	}, nil
}
