package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zarya/internal/domain/user"
	apperrors "zarya/internal/shared/errors"
)

type mockJWTService struct {
	GenerateFunc func(userID uint, username string, isStaff bool) (string, int64, error)
}

func (m *mockJWTService) Generate(userID uint, username string, isStaff bool) (string, int64, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, username, isStaff)
	}
	return "token", 3600, nil
}

func TestLoginUseCase_Execute_Success(t *testing.T) {
	repo := &mockUserRepository{
		GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			return reconstructUser(t, 7, "annap"), nil
		},
	}

	jwtSvc := &mockJWTService{
		GenerateFunc: func(userID uint, username string, isStaff bool) (string, int64, error) {
			assert.Equal(t, uint(7), userID)
			assert.Equal(t, "annap", username)
			assert.False(t, isStaff)
			return "signed-token", 3600, nil
		},
	}

	uc := NewLoginUseCase(repo, &mockPasswordHasher{}, jwtSvc, &mockLogger{})

	result, err := uc.Execute(context.Background(), LoginCommand{Username: "annap", Password: "correct-horse"})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
	assert.Equal(t, int64(3600), result.ExpiresIn)
	assert.Equal(t, uint(7), result.User.ID)
}

func TestLoginUseCase_Execute_UnknownUserAndBadPasswordLookAlike(t *testing.T) {
	missingRepo := &mockUserRepository{
		GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			return nil, apperrors.NewNotFoundError("user not found")
		},
	}
	badPasswordRepo := &mockUserRepository{
		GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			return reconstructUser(t, 7, "annap"), nil
		},
	}
	badHasher := &mockPasswordHasher{
		VerifyFunc: func(hash, password string) error {
			return fmt.Errorf("mismatch")
		},
	}

	missingUC := NewLoginUseCase(missingRepo, &mockPasswordHasher{}, &mockJWTService{}, &mockLogger{})
	badPasswordUC := NewLoginUseCase(badPasswordRepo, badHasher, &mockJWTService{}, &mockLogger{})

	_, missingErr := missingUC.Execute(context.Background(), LoginCommand{Username: "ghost", Password: "whatever"})
	_, badPasswordErr := badPasswordUC.Execute(context.Background(), LoginCommand{Username: "annap", Password: "wrong"})

	require.Error(t, missingErr)
	require.Error(t, badPasswordErr)
	assert.True(t, apperrors.IsUnauthorizedError(missingErr))
	assert.True(t, apperrors.IsUnauthorizedError(badPasswordErr))
	assert.Equal(t, missingErr.Error(), badPasswordErr.Error())
}

func TestLoginUseCase_Execute_TokenFailure(t *testing.T) {
	repo := &mockUserRepository{
		GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			return reconstructUser(t, 7, "annap"), nil
		},
	}
	jwtSvc := &mockJWTService{
		GenerateFunc: func(userID uint, username string, isStaff bool) (string, int64, error) {
			return "", 0, fmt.Errorf("signing failed")
		},
	}

	uc := NewLoginUseCase(repo, &mockPasswordHasher{}, jwtSvc, &mockLogger{})

	result, err := uc.Execute(context.Background(), LoginCommand{Username: "annap", Password: "correct-horse"})

	assert.Nil(t, result)
	assert.Error(t, err)
}
