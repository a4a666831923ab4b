// Package stats adapts repositories into the profile counter providers.
package stats

import (
	"context"

	"zarya/internal/domain/review"
	"zarya/internal/domain/ticket"
	"zarya/internal/domain/user"
)

// TicketCountProvider counts the tickets a user has opened.
type TicketCountProvider struct {
	ticketRepo ticket.Repository
}

func NewTicketCountProvider(ticketRepo ticket.Repository) *TicketCountProvider {
	return &TicketCountProvider{ticketRepo: ticketRepo}
}

func (p *TicketCountProvider) CountForUser(ctx context.Context, userID uint) (int64, error) {
	return p.ticketRepo.CountForUser(ctx, userID)
}

// ReviewCountProvider counts reviews submitted with the user's email
// address. Reviews are anonymous records, so email is the only link.
type ReviewCountProvider struct {
	userRepo   user.Repository
	reviewRepo review.Repository
}

func NewReviewCountProvider(userRepo user.Repository, reviewRepo review.Repository) *ReviewCountProvider {
	return &ReviewCountProvider{
		userRepo:   userRepo,
		reviewRepo: reviewRepo,
	}
}

func (p *ReviewCountProvider) CountForUser(ctx context.Context, userID uint) (int64, error) {
	u, err := p.userRepo.GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return p.reviewRepo.CountByEmail(ctx, u.Email())
}
