package usecases

import (
	"context"

	"zarya/internal/application/review/dto"
	"zarya/internal/domain/review"
	"zarya/internal/domain/review/valueobjects"
	apperrors "zarya/internal/shared/errors"
	"zarya/internal/shared/logger"
)

type ListReviewsQuery struct {
	Page     int
	PageSize int
}

type ListReviewsResult struct {
	Reviews []dto.ReviewDTO
	Total   int64
}

// ListReviewsUseCase serves the public review wall; only approved
// reviews are returned.
type ListReviewsUseCase struct {
	reviewRepo review.Repository
	logger     logger.Interface
}

func NewListReviewsUseCase(reviewRepo review.Repository, logger logger.Interface) *ListReviewsUseCase {
	return &ListReviewsUseCase{
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

func (uc *ListReviewsUseCase) Execute(ctx context.Context, query ListReviewsQuery) (*ListReviewsResult, error) {
	reviews, total, err := uc.reviewRepo.ListApproved(ctx, query.Page, query.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list approved reviews", "error", err)
		return nil, err
	}

	items := make([]dto.ReviewDTO, 0, len(reviews))
	for _, r := range reviews {
		items = append(items, dto.ToReviewDTO(r))
	}
	return &ListReviewsResult{Reviews: items, Total: total}, nil
}

type ListModerationQueueQuery struct {
	Status   string
	Page     int
	PageSize int
}

type ListModerationQueueResult struct {
	Reviews []dto.ModerationReviewDTO
	Total   int64
}

type ListModerationQueueUseCase struct {
	reviewRepo review.Repository
	logger     logger.Interface
}

func NewListModerationQueueUseCase(reviewRepo review.Repository, logger logger.Interface) *ListModerationQueueUseCase {
	return &ListModerationQueueUseCase{
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

func (uc *ListModerationQueueUseCase) Execute(ctx context.Context, query ListModerationQueueQuery) (*ListModerationQueueResult, error) {
	status := valueobjects.StatusPending
	if query.Status != "" {
		parsed, err := valueobjects.NewReviewStatus(query.Status)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		status = parsed
	}

	reviews, total, err := uc.reviewRepo.ListByStatus(ctx, status, query.Page, query.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list moderation queue", "status", status.String(), "error", err)
		return nil, err
	}

	items := make([]dto.ModerationReviewDTO, 0, len(reviews))
	for _, r := range reviews {
		items = append(items, dto.ToModerationReviewDTO(r))
	}
	return &ListModerationQueueResult{Reviews: items, Total: total}, nil
}
