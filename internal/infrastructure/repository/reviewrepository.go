package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"zarya/internal/domain/review"
	vo "zarya/internal/domain/review/valueobjects"
	"zarya/internal/infrastructure/persistence/mappers"
	"zarya/internal/infrastructure/persistence/models"
	"zarya/internal/shared/db"
	apperrors "zarya/internal/shared/errors"
)

type ReviewRepository struct {
	db     *gorm.DB
	mapper mappers.ReviewMapper
}

func NewReviewRepository(gdb *gorm.DB) *ReviewRepository {
	return &ReviewRepository{
		db:     gdb,
		mapper: mappers.NewReviewMapper(),
	}
}

func (r *ReviewRepository) Save(ctx context.Context, rev *review.Review) error {
	model := r.mapper.ToModel(rev)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return apperrors.NewInternalError("failed to save review")
	}

	rev.SetID(model.ID)
	return nil
}

func (r *ReviewRepository) Update(ctx context.Context, rev *review.Review) error {
	model := r.mapper.ToModel(rev)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.ReviewModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":     model.Status,
			"updated_at": model.UpdatedAt,
		}).Error; err != nil {
		return apperrors.NewInternalError("failed to update review")
	}

	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id uint) (*review.Review, error) {
	var model models.ReviewModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("review not found")
		}
		return nil, apperrors.NewInternalError("failed to load review")
	}

	return r.mapper.ToDomain(&model)
}

func (r *ReviewRepository) ListApproved(ctx context.Context, page, pageSize int) ([]*review.Review, int64, error) {
	return r.list(ctx, vo.StatusApproved, page, pageSize)
}

func (r *ReviewRepository) ListByStatus(ctx context.Context, status vo.ReviewStatus, page, pageSize int) ([]*review.Review, int64, error) {
	return r.list(ctx, status, page, pageSize)
}

func (r *ReviewRepository) list(ctx context.Context, status vo.ReviewStatus, page, pageSize int) ([]*review.Review, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ReviewModel{}).Where("status = ?", status.String())

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewInternalError("failed to count reviews")
	}

	var reviewModels []models.ReviewModel
	offset := (page - 1) * pageSize
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&reviewModels).Error; err != nil {
		return nil, 0, apperrors.NewInternalError("failed to list reviews")
	}

	reviews := make([]*review.Review, 0, len(reviewModels))
	for i := range reviewModels {
		rev, err := r.mapper.ToDomain(&reviewModels[i])
		if err != nil {
			return nil, 0, err
		}
		reviews = append(reviews, rev)
	}

	return reviews, total, nil
}

func (r *ReviewRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.ReviewModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return 0, apperrors.NewInternalError("failed to count reviews")
	}

	return count, nil
}
