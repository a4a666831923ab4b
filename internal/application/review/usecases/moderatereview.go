package usecases

import (
	"context"

	"zarya/internal/application/review/dto"
	"zarya/internal/domain/review"
	apperrors "zarya/internal/shared/errors"
	"zarya/internal/shared/logger"
)

type ModerationDecision string

const (
	DecisionApprove ModerationDecision = "approve"
	DecisionReject  ModerationDecision = "reject"
)

type ModerateReviewCommand struct {
	ReviewID uint
	Decision ModerationDecision
}

type ModerateReviewUseCase struct {
	reviewRepo review.Repository
	logger     logger.Interface
}

func NewModerateReviewUseCase(reviewRepo review.Repository, logger logger.Interface) *ModerateReviewUseCase {
	return &ModerateReviewUseCase{
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

func (uc *ModerateReviewUseCase) Execute(ctx context.Context, cmd ModerateReviewCommand) (*dto.ModerationReviewDTO, error) {
	uc.logger.Infow("executing moderate review use case", "review_id", cmd.ReviewID, "decision", cmd.Decision)

	r, err := uc.reviewRepo.GetByID(ctx, cmd.ReviewID)
	if err != nil {
		return nil, err
	}

	switch cmd.Decision {
	case DecisionApprove:
		err = r.Approve()
	case DecisionReject:
		err = r.Reject()
	default:
		return nil, apperrors.NewValidationError("decision must be approve or reject")
	}
	if err != nil {
		// Moderation decisions are final; a second decision is a conflict.
		uc.logger.Warnw("review moderation rejected", "review_id", cmd.ReviewID, "error", err)
		return nil, apperrors.NewConflictError(err.Error())
	}

	if err := uc.reviewRepo.Update(ctx, r); err != nil {
		uc.logger.Errorw("failed to update review", "review_id", cmd.ReviewID, "error", err)
		return nil, err
	}

	uc.logger.Infow("review moderated successfully", "review_id", cmd.ReviewID, "status", r.Status().String())
	result := dto.ToModerationReviewDTO(r)
	return &result, nil
}
