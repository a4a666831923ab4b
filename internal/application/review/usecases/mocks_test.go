package usecases

import (
	"context"

	"zarya/internal/domain/review"
	"zarya/internal/domain/review/valueobjects"
	"zarya/internal/shared/logger"
)

type mockReviewRepository struct {
	SaveFunc         func(ctx context.Context, r *review.Review) error
	UpdateFunc       func(ctx context.Context, r *review.Review) error
	GetByIDFunc      func(ctx context.Context, id uint) (*review.Review, error)
	ListApprovedFunc func(ctx context.Context, page, pageSize int) ([]*review.Review, int64, error)
	ListByStatusFunc func(ctx context.Context, status valueobjects.ReviewStatus, page, pageSize int) ([]*review.Review, int64, error)
	CountByEmailFunc func(ctx context.Context, email string) (int64, error)
}

func (m *mockReviewRepository) Save(ctx context.Context, r *review.Review) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockReviewRepository) Update(ctx context.Context, r *review.Review) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockReviewRepository) GetByID(ctx context.Context, id uint) (*review.Review, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockReviewRepository) ListApproved(ctx context.Context, page, pageSize int) ([]*review.Review, int64, error) {
	if m.ListApprovedFunc != nil {
		return m.ListApprovedFunc(ctx, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockReviewRepository) ListByStatus(ctx context.Context, status valueobjects.ReviewStatus, page, pageSize int) ([]*review.Review, int64, error) {
	if m.ListByStatusFunc != nil {
		return m.ListByStatusFunc(ctx, status, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockReviewRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	if m.CountByEmailFunc != nil {
		return m.CountByEmailFunc(ctx, email)
	}
	return 0, nil
}

type mockLogger struct{}

func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {}
func (m *mockLogger) With(args ...any) logger.Interface       { return m }
