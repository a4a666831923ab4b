package review

import (
	"context"

	"zarya/internal/domain/review/valueobjects"
)

type Repository interface {
	Save(ctx context.Context, review *Review) error
	Update(ctx context.Context, review *Review) error
	GetByID(ctx context.Context, id uint) (*Review, error)
	// ListApproved returns published reviews, newest first.
	ListApproved(ctx context.Context, page, pageSize int) ([]*Review, int64, error)
	// ListByStatus is the moderation queue view.
	ListByStatus(ctx context.Context, status valueobjects.ReviewStatus, page, pageSize int) ([]*Review, int64, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
}
