package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zarya/internal/domain/review"
	"zarya/internal/domain/review/valueobjects"
	apperrors "zarya/internal/shared/errors"
)

func reconstructReview(id uint, status valueobjects.ReviewStatus) *review.Review {
	return review.ReconstructReview(id, "Anna Petrova", "+7 900", "anna@example.com", "Great service", status, time.Now(), time.Now())
}

func TestModerateReviewUseCase_Execute_Approve(t *testing.T) {
	var updated *review.Review
	repo := &mockReviewRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*review.Review, error) {
			return reconstructReview(3, valueobjects.StatusPending), nil
		},
		UpdateFunc: func(ctx context.Context, r *review.Review) error {
			updated = r
			return nil
		},
	}

	uc := NewModerateReviewUseCase(repo, &mockLogger{})

	result, err := uc.Execute(context.Background(), ModerateReviewCommand{ReviewID: 3, Decision: DecisionApprove})

	require.NoError(t, err)
	assert.Equal(t, "approved", result.Status)
	require.NotNil(t, updated)
	assert.True(t, updated.Status().IsApproved())
}

func TestModerateReviewUseCase_Execute_Reject(t *testing.T) {
	repo := &mockReviewRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*review.Review, error) {
			return reconstructReview(3, valueobjects.StatusPending), nil
		},
	}

	uc := NewModerateReviewUseCase(repo, &mockLogger{})

	result, err := uc.Execute(context.Background(), ModerateReviewCommand{ReviewID: 3, Decision: DecisionReject})

	require.NoError(t, err)
	assert.Equal(t, "rejected", result.Status)
}

func TestModerateReviewUseCase_Execute_SecondDecisionIsConflict(t *testing.T) {
	tests := []struct {
		name     string
		status   valueobjects.ReviewStatus
		decision ModerationDecision
	}{
		{"approve already approved", valueobjects.StatusApproved, DecisionApprove},
		{"reject already approved", valueobjects.StatusApproved, DecisionReject},
		{"approve already rejected", valueobjects.StatusRejected, DecisionApprove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockReviewRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*review.Review, error) {
					return reconstructReview(3, tt.status), nil
				},
			}

			uc := NewModerateReviewUseCase(repo, &mockLogger{})

			result, err := uc.Execute(context.Background(), ModerateReviewCommand{ReviewID: 3, Decision: tt.decision})

			assert.Nil(t, result)
			require.Error(t, err)
			assert.True(t, apperrors.IsConflictError(err))
		})
	}
}

func TestModerateReviewUseCase_Execute_InvalidDecision(t *testing.T) {
	repo := &mockReviewRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*review.Review, error) {
			return reconstructReview(3, valueobjects.StatusPending), nil
		},
	}

	uc := NewModerateReviewUseCase(repo, &mockLogger{})

	result, err := uc.Execute(context.Background(), ModerateReviewCommand{ReviewID: 3, Decision: "publish"})

	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestSubmitReviewUseCase_Execute_SanitizesMessage(t *testing.T) {
	var savedMessage string
	repo := &mockReviewRepository{
		SaveFunc: func(ctx context.Context, r *review.Review) error {
			savedMessage = r.Message()
			r.SetID(9)
			return nil
		},
	}

	uc := NewSubmitReviewUseCase(repo, &scriptedSanitizer{output: "clean message"}, &mockLogger{})

	result, err := uc.Execute(context.Background(), SubmitReviewCommand{
		FullName: "Anna Petrova",
		Message:  "<script>alert(1)</script>clean message",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(9), result.ReviewID)
	assert.Equal(t, "pending", result.Status)
	assert.Equal(t, "clean message", savedMessage)
}

func TestSubmitReviewUseCase_Execute_ValidationError(t *testing.T) {
	uc := NewSubmitReviewUseCase(&mockReviewRepository{}, &scriptedSanitizer{output: ""}, &mockLogger{})

	result, err := uc.Execute(context.Background(), SubmitReviewCommand{FullName: "", Message: "hello"})

	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
}

// scriptedSanitizer returns a fixed sanitized value so tests do not depend
// on the sanitizer policy.
type scriptedSanitizer struct {
	output string
}

func (s *scriptedSanitizer) Sanitize(htmlContent string) string {
	return s.output
}

func (s *scriptedSanitizer) RenderMarkdown(markdown string) (string, error) {
	return s.output, nil
}
