// Package review implements visitor reviews and their moderation
// lifecycle. Submissions start pending and become publicly visible only
// after a staff member approves them.
package review

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"zarya/internal/domain/review/valueobjects"
)

const (
	maxFullNameLength = 100
	maxMessageLength  = 3000
)

type Review struct {
	id        uint
	fullName  string
	phone     string
	email     string
	message   string
	status    valueobjects.ReviewStatus
	createdAt time.Time
	updatedAt time.Time
}

// NewReview creates a pending review from a public submission.
func NewReview(fullName, phone, email, message string) (*Review, error) {
	fullName = strings.TrimSpace(fullName)
	message = strings.TrimSpace(message)

	if fullName == "" {
		return nil, fmt.Errorf("full name is required")
	}
	if len(fullName) > maxFullNameLength {
		return nil, fmt.Errorf("full name exceeds maximum length of %d characters", maxFullNameLength)
	}
	if message == "" {
		return nil, fmt.Errorf("message is required")
	}
	if len(message) > maxMessageLength {
		return nil, fmt.Errorf("message exceeds maximum length of %d characters", maxMessageLength)
	}
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, fmt.Errorf("invalid email address")
		}
	}

	now := time.Now()
	return &Review{
		fullName:  fullName,
		phone:     strings.TrimSpace(phone),
		email:     email,
		message:   message,
		status:    valueobjects.StatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructReview recreates a review from persistence.
func ReconstructReview(
	id uint,
	fullName, phone, email, message string,
	status valueobjects.ReviewStatus,
	createdAt, updatedAt time.Time,
) *Review {
	return &Review{
		id:        id,
		fullName:  fullName,
		phone:     phone,
		email:     email,
		message:   message,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Review) ID() uint                             { return r.id }
func (r *Review) FullName() string                     { return r.fullName }
func (r *Review) Phone() string                        { return r.phone }
func (r *Review) Email() string                        { return r.email }
func (r *Review) Message() string                      { return r.message }
func (r *Review) Status() valueobjects.ReviewStatus    { return r.status }
func (r *Review) CreatedAt() time.Time                 { return r.createdAt }
func (r *Review) UpdatedAt() time.Time                 { return r.updatedAt }

func (r *Review) SetID(id uint) {
	r.id = id
}

// Approve publishes the review. Only pending reviews can be approved.
func (r *Review) Approve() error {
	return r.moderate(valueobjects.StatusApproved)
}

// Reject hides the review permanently. Only pending reviews can be rejected.
func (r *Review) Reject() error {
	return r.moderate(valueobjects.StatusRejected)
}

func (r *Review) moderate(target valueobjects.ReviewStatus) error {
	if !r.status.CanTransitionTo(target) {
		return fmt.Errorf("cannot change review status from %s to %s", r.status, target)
	}
	r.status = target
	r.updatedAt = time.Now()
	return nil
}
