package dto

import (
	"time"

	"zarya/internal/domain/review"
)

type ReviewDTO struct {
	ID        uint      `json:"id"`
	FullName  string    `json:"full_name"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ModerationReviewDTO is the staff view and includes contact details
// and the moderation status.
type ModerationReviewDTO struct {
	ID        uint      `json:"id"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToReviewDTO(r *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:        r.ID(),
		FullName:  r.FullName(),
		Message:   r.Message(),
		CreatedAt: r.CreatedAt(),
	}
}

func ToModerationReviewDTO(r *review.Review) ModerationReviewDTO {
	return ModerationReviewDTO{
		ID:        r.ID(),
		FullName:  r.FullName(),
		Phone:     r.Phone(),
		Email:     r.Email(),
		Message:   r.Message(),
		Status:    r.Status().String(),
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
	}
}
