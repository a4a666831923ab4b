package usecases

import (
	"context"

	"zarya/internal/application/ticket/dto"
	"zarya/internal/domain/ticket"
	apperrors "zarya/internal/shared/errors"
	"zarya/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
	UserID   uint
	IsStaff  bool
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing get ticket use case", "ticket_id", query.TicketID, "user_id", query.UserID)

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	// Ownership is part of the lookup predicate: a foreign ticket is
	// indistinguishable from a missing one.
	if !t.CanBeViewedBy(query.UserID, query.IsStaff) {
		uc.logger.Warnw("ticket not visible to user", "ticket_id", query.TicketID, "user_id", query.UserID)
		return nil, apperrors.NewNotFoundError("ticket not found")
	}

	responses, err := uc.ticketRepo.GetResponses(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket responses", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	return dto.ToTicketDTO(t, responses), nil
}
