package usecases

import (
	"context"

	"zarya/internal/application/user/dto"
)

// JWTService issues the session token carried in the auth cookie.
type JWTService interface {
	Generate(userID uint, username string, isStaff bool) (string, int64, error)
}

// StatsProvider contributes one profile counter, keyed by the name it is
// registered under. Implementations live next to the data they count.
type StatsProvider interface {
	CountForUser(ctx context.Context, userID uint) (int64, error)
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type GetProfileExecutor interface {
	Execute(ctx context.Context, query GetProfileQuery) (*dto.ProfileDTO, error)
}

type UpdateProfileExecutor interface {
	Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.ProfileDTO, error)
}

type ChangePasswordExecutor interface {
	Execute(ctx context.Context, cmd ChangePasswordCommand) error
}
