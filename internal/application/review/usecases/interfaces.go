package usecases

import (
	"context"

	"zarya/internal/application/review/dto"
)

type SubmitReviewExecutor interface {
	Execute(ctx context.Context, cmd SubmitReviewCommand) (*SubmitReviewResult, error)
}

type ListReviewsExecutor interface {
	Execute(ctx context.Context, query ListReviewsQuery) (*ListReviewsResult, error)
}

type ListModerationQueueExecutor interface {
	Execute(ctx context.Context, query ListModerationQueueQuery) (*ListModerationQueueResult, error)
}

type ModerateReviewExecutor interface {
	Execute(ctx context.Context, cmd ModerateReviewCommand) (*dto.ModerationReviewDTO, error)
}
