package usecases

import (
	"context"
	"time"

	"zarya/internal/domain/review"
	apperrors "zarya/internal/shared/errors"
	"zarya/internal/shared/logger"
	"zarya/internal/shared/services/richtext"
)

type SubmitReviewCommand struct {
	FullName string
	Phone    string
	Email    string
	Message  string
}

type SubmitReviewResult struct {
	ReviewID  uint
	Status    string
	CreatedAt time.Time
}

type SubmitReviewUseCase struct {
	reviewRepo review.Repository
	richtext   richtext.Service
	logger     logger.Interface
}

func NewSubmitReviewUseCase(
	reviewRepo review.Repository,
	richtext richtext.Service,
	logger logger.Interface,
) *SubmitReviewUseCase {
	return &SubmitReviewUseCase{
		reviewRepo: reviewRepo,
		richtext:   richtext,
		logger:     logger,
	}
}

func (uc *SubmitReviewUseCase) Execute(ctx context.Context, cmd SubmitReviewCommand) (*SubmitReviewResult, error) {
	uc.logger.Infow("executing submit review use case", "full_name", cmd.FullName)

	// Submissions come from anonymous visitors, so the message is
	// sanitized before it is stored.
	message := uc.richtext.Sanitize(cmd.Message)

	r, err := review.NewReview(cmd.FullName, cmd.Phone, cmd.Email, message)
	if err != nil {
		uc.logger.Warnw("invalid review submission", "error", err)
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.reviewRepo.Save(ctx, r); err != nil {
		uc.logger.Errorw("failed to save review", "error", err)
		return nil, err
	}

	uc.logger.Infow("review submitted successfully", "review_id", r.ID())
	return &SubmitReviewResult{
		ReviewID:  r.ID(),
		Status:    r.Status().String(),
		CreatedAt: r.CreatedAt(),
	}, nil
}
