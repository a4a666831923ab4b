package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"zarya/internal/domain/user"
	"zarya/internal/infrastructure/persistence/mappers"
	"zarya/internal/infrastructure/persistence/models"
	"zarya/internal/shared/db"
	apperrors "zarya/internal/shared/errors"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(gdb *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     gdb,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewConflictError("username or email is already taken")
		}
		return apperrors.NewInternalError("failed to create user")
	}

	return u.SetID(model.ID)
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, apperrors.NewInternalError("failed to load user")
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("username = ?", username).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, apperrors.NewInternalError("failed to load user")
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.UserModel{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, apperrors.NewInternalError("failed to check username")
	}

	return count > 0, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.UserModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, apperrors.NewInternalError("failed to check email")
	}

	return count > 0, nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Updates(model).Error; err != nil {
		return apperrors.NewInternalError("failed to update user")
	}

	return nil
}

func (r *UserRepository) CreateProfile(ctx context.Context, p *user.Profile) error {
	model := r.mapper.ProfileToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return apperrors.NewInternalError("failed to create profile")
	}

	return p.SetID(model.ID)
}

func (r *UserRepository) GetProfile(ctx context.Context, userID uint) (*user.Profile, error) {
	var model models.ProfileModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("profile not found")
		}
		return nil, apperrors.NewInternalError("failed to load profile")
	}

	return r.mapper.ProfileToDomain(&model)
}

func (r *UserRepository) UpdateProfile(ctx context.Context, p *user.Profile) error {
	model := r.mapper.ProfileToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.ProfileModel{}).
		Where("user_id = ?", model.UserID).
		Updates(map[string]interface{}{
			"phone":      model.Phone,
			"bio":        model.Bio,
			"avatar_url": model.AvatarURL,
			"updated_at": model.UpdatedAt,
		}).Error; err != nil {
		return apperrors.NewInternalError("failed to update profile")
	}

	return nil
}
