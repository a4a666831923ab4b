package mappers

import (
	"time"

	"zarya/internal/domain/review"
	vo "zarya/internal/domain/review/valueobjects"
	"zarya/internal/infrastructure/persistence/models"
)

type ReviewMapper interface {
	ToModel(r *review.Review) *models.ReviewModel
	ToDomain(model *models.ReviewModel) (*review.Review, error)
}

type ReviewMapperImpl struct{}

func NewReviewMapper() ReviewMapper {
	return &ReviewMapperImpl{}
}

func (m *ReviewMapperImpl) ToModel(r *review.Review) *models.ReviewModel {
	return &models.ReviewModel{
		ID:        r.ID(),
		FullName:  r.FullName(),
		Phone:     r.Phone(),
		Email:     r.Email(),
		Message:   r.Message(),
		Status:    r.Status().String(),
		CreatedAt: r.CreatedAt().UnixMilli(),
		UpdatedAt: r.UpdatedAt().UnixMilli(),
	}
}

func (m *ReviewMapperImpl) ToDomain(model *models.ReviewModel) (*review.Review, error) {
	status, err := vo.NewReviewStatus(model.Status)
	if err != nil {
		return nil, err
	}

	return review.ReconstructReview(
		model.ID,
		model.FullName,
		model.Phone,
		model.Email,
		model.Message,
		status,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	), nil
}
