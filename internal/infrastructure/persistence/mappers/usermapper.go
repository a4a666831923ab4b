package mappers

import (
	"time"

	"zarya/internal/domain/user"
	"zarya/internal/infrastructure/persistence/models"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
	ProfileToModel(p *user.Profile) *models.ProfileModel
	ProfileToDomain(model *models.ProfileModel) (*user.Profile, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Username:     u.Username(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		IsStaff:      u.IsStaff(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Username,
		model.Email,
		model.PasswordHash,
		model.IsStaff,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

func (m *UserMapperImpl) ProfileToModel(p *user.Profile) *models.ProfileModel {
	return &models.ProfileModel{
		ID:        p.ID(),
		UserID:    p.UserID(),
		Phone:     p.Phone(),
		Bio:       p.Bio(),
		AvatarURL: p.AvatarURL(),
		CreatedAt: p.CreatedAt().UnixMilli(),
		UpdatedAt: p.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ProfileToDomain(model *models.ProfileModel) (*user.Profile, error) {
	return user.ReconstructProfile(
		model.ID,
		model.UserID,
		model.Phone,
		model.Bio,
		model.AvatarURL,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
